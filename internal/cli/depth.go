package cli

import (
	"fmt"

	"svnq.dev/svnq/svn"
)

// depthValue is a pflag.Value restricted to svn's depth names, so bad
// depths fail at flag parse time instead of inside svn.
type depthValue struct {
	depth *svn.Depth
}

func newDepthValue(target *svn.Depth) *depthValue {
	return &depthValue{depth: target}
}

func (d *depthValue) String() string {
	return string(*d.depth)
}

func (d *depthValue) Set(raw string) error {
	switch svn.Depth(raw) {
	case svn.DepthEmpty, svn.DepthFiles, svn.DepthImmediates, svn.DepthInfinity:
		*d.depth = svn.Depth(raw)
		return nil
	}
	return fmt.Errorf("invalid depth %q (want empty, files, immediates or infinity)", raw)
}

func (d *depthValue) Type() string {
	return "depth"
}
