package kv

import (
	"io"
	"os"
	"strings"
)

// resolveBody produces the raw request body for a put without metadata:
// either the literal value bytes or a stream over the file at the value path.
// The caller owns closing the returned body; for files this keeps the handle
// open exactly for the duration of the send.
func resolveBody(req PutRequest) (io.ReadCloser, error) {
	if !req.IsFile {
		return io.NopCloser(strings.NewReader(req.Value)), nil
	}

	info, err := os.Lstat(req.Value)
	if err != nil {
		return nil, wrapError(ErrKindFilesystem, err)
	}

	switch {
	case info.Mode().IsRegular():
		f, err := os.Open(req.Value)
		if err != nil {
			return nil, wrapError(ErrKindFilesystem, err)
		}
		return f, nil
	case info.IsDir():
		return nil, errorf(ErrKindFilesystem, "--path argument takes a file, %s is a directory", req.Value)
	default:
		// symlinks and the remaining special file types
		return nil, errorf(ErrKindFilesystem, "--path argument takes a file, %s is a symlink", req.Value)
	}
}
