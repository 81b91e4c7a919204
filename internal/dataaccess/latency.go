package dataaccess

import (
	"context"
	"time"

	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
)

// Simulated round-trip time per operation, before scaling.
var baseLatency = map[string]time.Duration{
	opInitialize:    100 * time.Millisecond,
	opReset:         100 * time.Millisecond,
	opGetProfile:    50 * time.Millisecond,
	opUpdateProfile: 100 * time.Millisecond,
	opListProjects:  150 * time.Millisecond,
	opGetProject:    50 * time.Millisecond,
	opCreateProject: 200 * time.Millisecond,
	opUpdateProject: 100 * time.Millisecond,
	opDeleteProject: 100 * time.Millisecond,
	opListClips:     50 * time.Millisecond,
	opUpdateClip:    100 * time.Millisecond,
	opListCaptions:  50 * time.Millisecond,
	opListTimeline:  50 * time.Millisecond,
	opListCatalog:   50 * time.Millisecond,
}

const (
	opInitialize    = "initialize"
	opReset         = "reset"
	opGetProfile    = "getProfile"
	opUpdateProfile = "updateProfile"
	opListProjects  = "listProjects"
	opGetProject    = "getProject"
	opCreateProject = "createProject"
	opUpdateProject = "updateProject"
	opDeleteProject = "deleteProject"
	opListClips     = "listClips"
	opUpdateClip    = "updateClip"
	opListCaptions  = "listCaptions"
	opListTimeline  = "listTimeline"
	opListCatalog   = "listCatalog"
)

// latency returns the scaled delay for op.
func (s *service) latency(op string) time.Duration {
	return time.Duration(float64(baseLatency[op]) * s.latencyScale)
}

// wait blocks for the op's simulated latency or until ctx is done.
func (s *service) wait(ctx context.Context, op string) error {
	d := s.latency(op)
	if d <= 0 {
		return canceled(ctx.Err())
	}
	select {
	case <-ctx.Done():
		return canceled(ctx.Err())
	case <-s.clock.After(d):
		return nil
	}
}

func canceled(err error) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrap(pkgerrors.CodeCanceled, err, "operation canceled")
}
