package endpoint

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/qmoi-infer/internal/model"
)

// Process exit statuses
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Recommender produces a trade recommendation for a decoded request
type Recommender interface {
	Recommend(req model.Request) (model.Recommendation, error)
}

// Endpoint serves exactly one inference request per call to Serve
type Endpoint struct {
	recommender Recommender
	logger      zerolog.Logger
}

// New creates an endpoint. The logger is derived from the global zerolog
// logger, so logging must be configured before calling New.
func New(recommender Recommender) *Endpoint {
	return &Endpoint{
		recommender: recommender,
		logger: log.With().
			Str("component", "endpoint").
			Str("invocation_id", uuid.NewString()).
			Logger(),
	}
}

// Serve reads one request from in, writes the recommendation to out and
// returns ExitSuccess. On any failure it writes {"error": ...} to errOut and
// returns ExitFailure.
func (e *Endpoint) Serve(in io.Reader, out, errOut io.Writer) int {
	err := e.serve(in, out)
	if err == nil {
		return ExitSuccess
	}

	e.logger.Error().Err(err).Msg("Inference failed")
	if werr := WriteError(errOut, err); werr != nil {
		e.logger.Error().Err(werr).Msg("Writing error response failed")
	}
	return ExitFailure
}

func (e *Endpoint) serve(in io.Reader, out io.Writer) (err error) {
	stage := StageRead
	defer func() {
		if r := recover(); r != nil {
			err = fail(stage, fmt.Errorf("panic: %v", r))
		}
	}()

	raw, err := io.ReadAll(in)
	if err != nil {
		return fail(stage, err)
	}

	stage = StageDecode
	req, err := Decode(raw)
	if err != nil {
		return fail(stage, err)
	}
	e.logger.Debug().
		Float64("asset_value", req.AssetValue).
		Int("open_trades", len(req.OpenTrades)).
		Float64("max_concurrent", req.MaxConcurrent).
		Msg("Request decoded")

	stage = StageRecommend
	rec, err := e.recommender.Recommend(req)
	if err != nil {
		return fail(stage, err)
	}
	e.logger.Debug().
		Str("symbol", rec.Symbol).
		Str("side", string(rec.Side)).
		Float64("amount", rec.Amount).
		Msg("Recommendation ready")

	stage = StageEncode
	if err := writeJSON(out, rec); err != nil {
		return fail(stage, err)
	}
	return nil
}

// WriteError reports err on w as the {"error": ...} object
func WriteError(w io.Writer, err error) error {
	return writeJSON(w, model.ErrorResponse{Error: err.Error()})
}

// writeJSON writes v as one JSON object followed by a newline
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
