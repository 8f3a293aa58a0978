package endpoint

import (
	"errors"
	"fmt"
)

// Stages at which inference can fail
const (
	StageRead      = "read"
	StageDecode    = "decode"
	StageRecommend = "recommend"
	StageEncode    = "encode"
)

var ErrNotObject = errors.New("payload must be a JSON object")

// InferenceFailure is the single failure kind reported to the caller. It covers
// malformed input as well as anything that goes wrong while computing.
type InferenceFailure struct {
	Stage string
	Err   error
}

func (f *InferenceFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Stage, f.Err)
}

func (f *InferenceFailure) Unwrap() error {
	return f.Err
}

func fail(stage string, err error) error {
	return &InferenceFailure{Stage: stage, Err: err}
}
