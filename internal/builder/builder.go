package builder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/backmassage/pathforge/internal/collide"
	"github.com/backmassage/pathforge/internal/config"
	"github.com/backmassage/pathforge/internal/naming"
	"github.com/backmassage/pathforge/internal/probe"
)

// Request describes one path-building call. It is constructed fresh per call
// and discarded after producing one [Result]; nothing persists between calls.
//
// ParentPath must already be absolute — resolving relative input is the host
// environment's job, not this package's.
type Request struct {
	Kind       config.ObjectKind
	ParentPath string

	Prefix  string
	MidPart string
	Suffix  string

	IncludeTimestamp bool
	TimestampValue   time.Time // Zero value means "now".
	TimestampFormat  string    // Go layout; empty selects the kind default.

	Extension string // Files only; empty selects the default.
	Separator string // Empty selects the default.

	BreakOnError bool // Convert failure statuses into returned errors.
	Force        bool // Allow overwrite without consulting the provider.
}

// NewRequest builds a Request from parsed CLI configuration.
func NewRequest(cfg *config.Config) Request {
	return Request{
		Kind:             cfg.Kind,
		ParentPath:       cfg.ParentPath,
		Prefix:           cfg.Prefix,
		MidPart:          cfg.MidPart,
		Suffix:           cfg.Suffix,
		IncludeTimestamp: cfg.IncludeTimestamp,
		TimestampValue:   cfg.TimestampValue,
		TimestampFormat:  cfg.TimestampFormat,
		Extension:        cfg.Extension,
		Separator:        cfg.Separator,
		BreakOnError:     cfg.StrictMode,
		Force:            cfg.Force,
	}
}

// Builder sequences probe, assembly, normalization, and collision resolution
// into one request/response cycle. It holds no mutable state; one Builder may
// serve any number of sequential calls.
type Builder struct {
	decide collide.DecisionProvider
}

// New returns a Builder that consults provider when a computed path already
// exists. A nil provider is legal as long as every colliding request carries
// Force.
func New(provider collide.DecisionProvider) *Builder {
	return &Builder{decide: provider}
}

// Build runs the full cycle: probe parent writability, assemble the name,
// normalize the joined path, and resolve a collision when the target exists.
//
// Statuses (ExitCode 1-5) are returned in the Result, not as errors. The
// error is non-nil only when the call aborts: BreakOnError converts parent,
// writability, and name failures into errors, and a provider Abort answer
// always aborts regardless of BreakOnError. Once a non-zero code is set no
// later step runs, but the path is still computed and attached whenever
// assembly allows it.
func (b *Builder) Build(req Request) (Result, error) {
	req = withDefaults(req)

	if err := probe.Writable(req.ParentPath, req.Kind); err != nil {
		return b.probeFailure(req, err)
	}

	name, err := assembleName(req)
	if err != nil {
		if req.BreakOnError {
			return Result{}, err
		}
		return Result{
			ExitCode:        ExitBadName,
			ExitDescription: "assembled name contains unacceptable characters",
		}, nil
	}

	path := joinNormalized(req, name)

	code, desc, err := b.resolveExisting(req, path)
	if err != nil {
		return Result{}, err
	}
	return Result{Path: path, ExitCode: code, ExitDescription: desc}, nil
}

// probeFailure maps a probe error to exit 1 or 3. The name is still assembled
// on a best-effort basis so the result carries the path that was attempted.
func (b *Builder) probeFailure(req Request, probeErr error) (Result, error) {
	if req.BreakOnError {
		return Result{}, probeErr
	}

	res := Result{
		ExitCode:        ExitNotWritable,
		ExitDescription: fmt.Sprintf("parent path %q is not writable", req.ParentPath),
	}
	if errors.Is(probeErr, probe.ErrParentMissing) {
		res.ExitCode = ExitParentMissing
		res.ExitDescription = fmt.Sprintf("parent path %q does not exist", req.ParentPath)
	}

	if name, err := assembleName(req); err == nil {
		res.Path = joinNormalized(req, name)
	}
	return res, nil
}

// resolveExisting checks for a same-kind entry at path and consults the
// collision resolver when one is there. A different-kind entry is not a
// collision; the caller's own create will surface that conflict.
func (b *Builder) resolveExisting(req Request, path string) (ExitCode, string, error) {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() != (req.Kind == config.KindFolder) {
		return ExitOK, fmt.Sprintf("path %q computed, no conflicts", path), nil
	}

	decision, err := collide.Resolve(path, req.Kind, req.Force, b.decide)
	if err != nil {
		return 0, "", err
	}
	if decision == collide.Overwrite {
		return ExitOverwriteAllowed, fmt.Sprintf("%q already exists, can be overwritten", path), nil
	}
	return ExitOverwriteDenied, fmt.Sprintf("%q already exists, cannot be overwritten", path), nil
}

// withDefaults fills the kind-dependent defaults into a copy of req.
func withDefaults(req Request) Request {
	if req.Separator == "" {
		req.Separator = config.DefaultSeparator
	}
	if req.Extension == "" {
		req.Extension = config.DefaultExtension
	}
	if req.TimestampFormat == "" {
		if req.Kind == config.KindFolder {
			req.TimestampFormat = config.DefaultFolderTimeFormat
		} else {
			req.TimestampFormat = config.DefaultFileTimeFormat
		}
	}
	return req
}

func assembleName(req Request) (string, error) {
	return naming.Assemble(naming.Parts{
		Kind:             req.Kind,
		Prefix:           req.Prefix,
		MidPart:          req.MidPart,
		Suffix:           req.Suffix,
		IncludeTimestamp: req.IncludeTimestamp,
		Timestamp:        req.TimestampValue,
		TimeFormat:       req.TimestampFormat,
		Extension:        req.Extension,
		Separator:        req.Separator,
	})
}

func joinNormalized(req Request, name string) string {
	sep := string(filepath.Separator)
	return naming.Normalize(req.ParentPath+sep+name, sep, req.Separator)
}
