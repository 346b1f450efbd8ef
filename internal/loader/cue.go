package loader

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// loadCUE evaluates a single CUE file and decodes its JSON export. The
// evaluated value must be concrete.
func loadCUE(path string, data []byte) (*Document, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, cueLoadError(path, err)
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(path, err)
	}

	exported, err := value.MarshalJSON()
	if err != nil {
		return nil, cueLoadError(path, err)
	}
	tree, err := parseJSON(exported)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Path: path, Message: fmt.Sprintf("exporting CUE value: %v", err), Err: err}
	}
	return Decode(path, tree)
}

// cueLoadError keeps the position of the first CUE error when one exists.
func cueLoadError(path string, err error) *LoadError {
	le := &LoadError{Code: ErrCodeBuildFailed, Path: path, Message: err.Error(), Err: err}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return le
	}
	first := errs[0]
	le.Message = first.Error()
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
