package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	platformerrors "github.com/jmgilman/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/errno"
)

// parseCode accepts decimal, hex (0x) and octal (0o) codes.
func parseCode(arg string) (errno.Errno, error) {
	n, err := strconv.ParseInt(arg, 0, 32)
	if err != nil {
		return 0, platformerrors.Wrapf(err, platformerrors.CodeInvalidInput, "invalid code %q", arg)
	}
	return errno.FromInt(int32(n)), nil
}

// render writes codes in the configured format.
//
// Text output is one line per code: "[NAME ]CODE DESCRIPTION".
// JSON and YAML output is a list of the structured rendering of each code.
func (a *app) render(w io.Writer, codes []errno.Errno) error {
	switch a.output() {
	case outputJSON:
		if err := json.NewEncoder(w).Encode(a.responses(codes)); err != nil {
			return platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to encode output")
		}
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(a.responses(codes)); err != nil {
			return platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to encode output")
		}
		if err := enc.Close(); err != nil {
			return platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to encode output")
		}
		return nil
	}

	for _, code := range codes {
		line := strconv.FormatInt(int64(code), 10) + " " + a.describe(code)
		if name := code.Name(); name != "" {
			line = name + " " + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to write output")
		}
	}
	return nil
}

// describe returns the display text of code, logging a failed lookup.
func (a *app) describe(code errno.Errno) string {
	desc, err := code.Describe()
	if err != nil {
		a.logUnavailable(code, err)
		return err.Error()
	}
	if desc == "" {
		return code.String()
	}
	return desc
}

// responses builds the structured rendering of each code, looking every code
// up once.
func (a *app) responses(codes []errno.Errno) []*errno.ErrorResponse {
	out := make([]*errno.ErrorResponse, 0, len(codes))
	for _, code := range codes {
		resp := &errno.ErrorResponse{Code: int32(code)}
		if desc, err := code.Describe(); err != nil {
			a.logUnavailable(code, err)
		} else {
			resp.Description = &desc
		}
		out = append(out, resp)
	}
	return out
}

func (a *app) logUnavailable(code errno.Errno, err error) {
	a.log.WithError(err).WithField("code", int32(code)).Debug("description unavailable")
}
