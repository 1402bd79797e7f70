package filters

import (
	"fmt"

	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
	"github.com/ddushkinn/mkvsynth/internal/graph"
)

// registerSink hands a terminal filter's (writeRawFile, x264Encode)
// upstream chain and parameters to the global graph runtime as a Sink,
// to be run when the script calls go() (spec.md §5, §6.2). It does not
// walk or touch upstream itself — a real implementation would pull
// frames through it; the stub only describes the chain it was handed.
func registerSink(env ast.Env, filterName string, upstream *ast.Node, params map[string]any) {
	v, ok := env.Global().Get("graph")
	if !ok {
		evalerr.Raisef("%s called with no filter graph runtime configured", filterName)
	}
	rt, ok := v.(*graph.Runtime)
	if !ok {
		evalerr.Raisef("%s found a malformed filter graph runtime", filterName)
	}

	chain := describeChain(upstream)
	rt.Register(func() error {
		fmt.Printf("%s: writing %s -> %v\n", filterName, chain, params)
		return nil
	})
}

// describeChain renders an upstream Clip chain as a short filter-name
// trail (e.g. "MKVsource -> ffmpegDecode -> crop"), for the stub sink's
// log line.
func describeChain(clip *ast.Node) string {
	if clip == nil || clip.Tag != ast.Clip {
		return "<clip>"
	}
	h, ok := clip.ClipVal.Handle.(*clipHandle)
	if !ok {
		return "<clip>"
	}
	if clip.ClipVal.Input == nil {
		return h.Filter
	}
	return describeChain(clip.ClipVal.Input) + " -> " + h.Filter
}
