// Package filters is the evaluator's filter-plugin boundary (spec.md §1
// "filter plugins... external collaborators referenced only through
// their interfaces"). Real mkvsynth filters decode, resize, crop, and
// encode video; this package ships faithful stubs that preserve the
// Clip-chaining contract (spec.md §3.1, §4.6.5) without doing any real
// decoding, grounded on original_source/delbrot/plugins.c's fnEntry
// table and original_source/filters/encode.c's encoder shape.
//
// Unlike internal/interp/builtins' Go-literal registration table, the
// filter surface is declared in manifest.json and read with
// tidwall/gjson at init time — filter plugins are the one part of this
// system the original loaded from separate compiled objects, not a
// static C table, so a data-driven manifest is the closer fit.
package filters

import (
	_ "embed"

	"github.com/tidwall/gjson"

	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
)

//go:embed manifest.json
var manifestJSON []byte

// argSpec is one declared non-clip argument of a filter. A zero-value
// Default/HasDefault means the argument is mandatory; otherwise Default
// is used whenever the caller supplies neither a named nor positional
// value for it (SPEC_FULL.md §6.2, e.g. crop's unspecified margins).
type argSpec struct {
	Name       string
	Type       ast.Tag
	Default    any
	HasDefault bool
}

// filterSpec is one manifest entry: a filter's name, whether it consumes
// and/or produces a Clip, and its remaining fixed argument list.
type filterSpec struct {
	Name         string
	ConsumesClip bool
	ProducesClip bool
	Args         []argSpec
}

var typeNames = map[string]ast.Tag{
	"number": ast.Num,
	"boolean": ast.Bool,
	"string":  ast.Str,
}

// Registry holds the set of filter built-ins by name, the same shape as
// internal/interp/builtins.Registry so both populate an ast.FnInstaller
// the same way.
type Registry struct {
	funcs map[string]ast.CoreFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]ast.CoreFunc)}
}

// Register adds a filter function under name.
func (r *Registry) Register(name string, fn ast.CoreFunc) {
	r.funcs[name] = fn
}

// InstallAll installs every registered filter into inst's function
// table, wrapped as a core Fn node (spec.md §9's sole extension point).
func (r *Registry) InstallAll(inst ast.FnInstaller) {
	for name, fn := range r.funcs {
		inst.PutFn(name, &ast.Node{
			Tag: ast.FnTag,
			FnVal: &ast.FnData{
				Name:   name,
				IsCore: true,
				Core:   fn,
			},
		})
	}
}

// Names returns the registered filter names, unsorted; callers that need
// a stable display order (the CLI's --list-filters) sort with
// maruel/natural themselves, matching internal/interp/builtins.Names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is populated from manifest.json at init time.
var DefaultRegistry = NewRegistry()

func init() {
	for _, spec := range parseManifest(manifestJSON) {
		DefaultRegistry.Register(spec.Name, buildFilter(spec))
	}
}

// parseManifest decodes the filter manifest with gjson rather than
// encoding/json, matching the config/manifest-reading style the rest of
// this repository uses for semi-structured external data (SPEC_FULL.md
// §6.2).
func parseManifest(data []byte) []filterSpec {
	var specs []filterSpec
	for _, entry := range gjson.ParseBytes(data).Array() {
		spec := filterSpec{
			Name:         entry.Get("name").String(),
			ConsumesClip: entry.Get("consumesClip").Bool(),
			ProducesClip: entry.Get("producesClip").Bool(),
		}
		for _, a := range entry.Get("args").Array() {
			as := argSpec{
				Name: a.Get("name").String(),
				Type: typeNames[a.Get("type").String()],
			}
			if d := a.Get("default"); d.Exists() {
				as.HasDefault = true
				switch as.Type {
				case ast.Bool:
					as.Default = d.Bool()
				case ast.Str:
					as.Default = d.String()
				default:
					as.Default = d.Float()
				}
			}
			spec.Args = append(spec.Args, as)
		}
		specs = append(specs, spec)
	}
	return specs
}

// clipHandle is the opaque payload behind a stub filter's Clip
// (ast.ClipData.Handle): enough to describe what a real filter graph
// would need to build, without doing any of the decoding/resizing work
// itself.
type clipHandle struct {
	Filter string
	Params map[string]any
}

// buildFilter compiles one manifest entry into a CoreFunc: check the
// declared argument shape (spec.md §4.9), then either produce a new
// Clip (a decode/transform/source filter) or register a sink with the
// graph runtime (a terminal filter — writeRawFile, x264Encode).
//
// Filter calls in spec.md §8.4 (`crop(left=8)`, `bilinearResize(width=640,
// height=360)`) pass arguments by name, the method-chain sugar's natural
// calling convention (spec.md §4.6.5) — a name is matched against the
// declared arg first, falling back to positional order for the rest,
// the same name-then-position lookup interp.GetOptArg uses for optional
// user-function parameters.
func buildFilter(spec filterSpec) ast.CoreFunc {
	return func(env ast.Env, result *ast.Node, args *ast.Node) *ast.Node {
		a := args
		var upstream *ast.Node
		if spec.ConsumesClip {
			if a == nil || a.Tag != ast.Clip {
				evalerr.Raisef("%s expected a clip as its first argument", spec.Name)
			}
			upstream = a
			a = a.Next
		}

		named := make(map[string]*ast.Node)
		var positional []*ast.Node
		for n := a; n != nil; n = n.Next {
			if n.Tag == ast.OptArg {
				named[n.OptArgVal.Name] = n.OptArgVal.Value
			} else {
				positional = append(positional, n)
			}
		}

		params := make(map[string]any, len(spec.Args))
		pos := 0
		for _, as := range spec.Args {
			v, ok := named[as.Name]
			if ok {
				delete(named, as.Name)
			} else if pos < len(positional) {
				v = positional[pos]
				pos++
			} else if as.HasDefault {
				params[as.Name] = as.Default
				continue
			} else {
				evalerr.Raisef("%s expected argument %q", spec.Name, as.Name)
			}
			if v.Tag != as.Type {
				evalerr.Raisef("type mismatch: arg %s of %s expected %s, got %s", as.Name, spec.Name, as.Type, v.Tag)
			}
			params[as.Name] = valueOf(v)
		}
		if pos < len(positional) || len(named) > 0 {
			evalerr.Raisef("%s got more arguments than it expects", spec.Name)
		}

		if !spec.ProducesClip {
			registerSink(env, spec.Name, upstream, params)
			return sentinelFn(result, spec.Name)
		}

		result.Tag = ast.Clip
		result.ClipVal = &ast.ClipData{
			Input:  upstream,
			Handle: &clipHandle{Filter: spec.Name, Params: params},
		}
		return result
	}
}

// valueOf extracts a Go value out of a Num/Bool/Str leaf node for
// storage in a clipHandle's Params.
func valueOf(n *ast.Node) any {
	switch n.Tag {
	case ast.Num:
		return n.NumVal
	case ast.Bool:
		return n.BoolVal
	case ast.Str:
		return n.StrVal
	default:
		return nil
	}
}

// sentinelFn builds the Fn-tagged placeholder a terminal filter returns,
// matching internal/interp/builtins' convention for built-ins with no
// meaningful return value.
func sentinelFn(result *ast.Node, name string) *ast.Node {
	result.Tag = ast.FnTag
	result.FnVal = &ast.FnData{Name: name, IsCore: true}
	return result
}
