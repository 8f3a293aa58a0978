package prediction

import (
	"errors"
	"math"

	"github.com/Alias1177/qmoi-infer/internal/model"
	"github.com/Alias1177/qmoi-infer/internal/trading/risk"
)

// BuyThreshold is the asset value above which the recommendation is a buy
const BuyThreshold = 0.85

var (
	ErrNoPairs         = errors.New("no trading pairs configured")
	ErrAssetValueRange = errors.New("assetValue out of range")
)

// DefaultPairs returns the fixed, ordered trading-pair list
func DefaultPairs() []string {
	return []string{"BTC/USDT", "ETH/USDT", "SOL/USDT", "XRP/USDT"}
}

// Predictor is the placeholder trade model. It holds no learned state; the
// recommendation is a pure function of the request.
type Predictor struct {
	Pairs []string
}

// NewPredictor creates a predictor over DefaultPairs
func NewPredictor() *Predictor {
	return &Predictor{Pairs: DefaultPairs()}
}

// Recommend picks a pair, side and amount for the request
func (p *Predictor) Recommend(req model.Request) (model.Recommendation, error) {
	if len(p.Pairs) == 0 {
		return model.Recommendation{}, ErrNoPairs
	}

	idx, err := PairIndex(len(req.OpenTrades), req.AssetValue, len(p.Pairs))
	if err != nil {
		return model.Recommendation{}, err
	}

	return model.Recommendation{
		Symbol: p.Pairs[idx],
		Side:   DetermineSide(req.AssetValue),
		Amount: risk.TradeAmount(req.AssetValue, req.MaxConcurrent),
	}, nil
}

// PairIndex computes (openTrades + floor(assetValue*10)) mod n using floor-mod,
// so the result is in [0, n) for negative asset values as well.
func PairIndex(openTrades int, assetValue float64, n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoPairs
	}

	scaled := math.Floor(assetValue * 10)
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return 0, ErrAssetValueRange
	}

	// Reduce each term before adding: past 2^53 the sum would drop the trade count.
	fn := float64(n)
	rem := math.Mod(math.Mod(scaled, fn)+float64(openTrades%n), fn)
	if rem < 0 {
		rem += fn
	}
	return int(rem), nil
}

// DetermineSide returns buy strictly above BuyThreshold, sell otherwise
func DetermineSide(assetValue float64) model.Side {
	if assetValue > BuyThreshold {
		return model.SideBuy
	}
	return model.SideSell
}
