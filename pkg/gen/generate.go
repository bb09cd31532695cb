package gen

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vkbind/vkbind-go/pkg/ir"
	"github.com/vkbind/vkbind-go/pkg/log"
	"github.com/vkbind/vkbind-go/pkg/registry"
)

// Generate runs one generation pass over a registry. Units are produced in
// a fixed order: the loader prelude, feature tables, extension tables and
// constants, definitions, enumerations, bit-flag types and top-level
// constants. The first fatal error aborts the pass and no module is
// returned.
func Generate(reg *registry.Registry, cfg Config) (*ir.Module, error) {
	cfg = cfg.withDefaults()

	digest, err := registry.Digest(reg)
	if err != nil {
		return nil, fmt.Errorf("digest registry: %w", err)
	}

	r := &run{
		cfg:      cfg,
		reg:      reg,
		mod:      &ir.Module{Digest: digest},
		declared: make(map[string]bool),
	}
	r.trace(log.CategoryRun, func(e *log.Event) {
		e.Run = &log.RunEvent{State: log.RunStarted, Digest: digest}
	})

	if err := r.generate(); err != nil {
		r.trace(log.CategoryError, func(e *log.Event) {
			e.Error = &log.ErrorEventData{Stage: r.stage, Message: err.Error(), Context: r.context}
		})
		r.trace(log.CategoryRun, func(e *log.Event) {
			e.Run = &log.RunEvent{State: log.RunFailed, Digest: digest}
		})
		return nil, err
	}

	r.trace(log.CategoryRun, func(e *log.Event) {
		e.Run = &log.RunEvent{
			State:   log.RunFinished,
			Digest:  digest,
			Units:   len(r.mod.Units),
			Dropped: r.dropped,
		}
	})
	return r.mod, nil
}

// run holds the state of one generation pass.
type run struct {
	cfg Config
	reg *registry.Registry
	mod *ir.Module

	idx    *CommandIndex
	layout *Layout

	declared map[string]bool
	dropped  int

	// stage and context locate the node being generated for error events.
	stage   log.Stage
	context string
}

func (r *run) generate() error {
	r.stage = log.StageIndex
	r.idx = NewCommandIndex(r.reg.Commands)
	r.layout = NewLayout(r.reg)
	r.cfg.Logger.Debug("indexed registry",
		slog.Int("commands", r.idx.Len()),
		slog.Int("definitions", len(r.reg.Definitions)),
	)

	r.add(&ir.Prelude{}, "", 0)

	steps := []func() error{
		r.features,
		r.extensions,
		r.definitions,
		r.enums,
		r.constants,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) features() error {
	r.stage = log.StageFeatures
	var prev *FeatureTables
	for _, f := range r.reg.Features {
		r.context = f.Name
		out, err := AssembleFeature(f, r.idx)
		if err != nil {
			return err
		}
		if prev != nil && out.Version.Compare(prev.Version) <= 0 {
			r.cfg.Logger.Warn("feature version does not follow its predecessor",
				slog.String("feature", f.Name),
				slog.String("version", out.Version.String()),
				slog.String("previous", prev.Version.String()),
			)
		}
		prev = &out
		r.drop(f.Name, out.Dropped)
		for _, tbl := range out.Tables {
			r.add(tbl, f.Name, len(tbl.Slots))
		}
	}
	return nil
}

func (r *run) extensions() error {
	r.stage = log.StageExtensions
	for _, ext := range r.reg.Extensions {
		r.context = ext.Name
		out, err := AssembleExtension(ext, r.idx)
		if err != nil {
			return err
		}
		r.drop(ext.Name, out.Dropped)
		if out.Table != nil {
			r.add(out.Table, ext.Name, len(out.Table.Slots))
		} else {
			r.skip(ir.KindFnTable, ext.Name, "no resolved commands")
		}
		for _, c := range out.Constants {
			r.add(c, ext.Name, 0)
		}
	}
	return nil
}

func (r *run) definitions() error {
	r.stage = log.StageDefinitions
	for _, def := range r.reg.Definitions {
		r.context = def.DefinitionName()
		switch d := def.(type) {
		case *registry.Handle:
			h := GenerateHandle(d)
			if h == nil {
				r.skip(ir.KindHandle, d.Name, "empty name")
				continue
			}
			r.add(h, d.Name, 0)

		case *registry.Typedef:
			r.add(GenerateTypedef(d), d.Name, 0)

		case *registry.Struct:
			s, err := GenerateStruct(d)
			if err != nil {
				return err
			}
			r.add(s, d.Name, len(s.Fields))

		case *registry.Union:
			u, err := GenerateUnion(d, r.layout)
			if err != nil {
				return err
			}
			r.add(u, d.Name, len(u.Fields))

		case *registry.Bitmask:
			bf, reason := GenerateBitmask(d)
			if bf == nil {
				r.skip(ir.KindBitflags, d.Name, reason)
				continue
			}
			r.add(bf, d.Name, 0)

		case *registry.FuncPtr:
			fp, err := GenerateFuncPtr(d)
			if err != nil {
				return err
			}
			r.add(fp, d.Name, 0)
		}
	}
	return nil
}

// enums emits plain enumerations before bit-flag types.
func (r *run) enums() error {
	r.stage = log.StageEnums
	var flags []ir.Decl
	var sources []string

	for _, e := range r.reg.Enums {
		r.context = e.Name
		d, err := GenerateEnum(e)
		if err != nil {
			return err
		}
		switch d := d.(type) {
		case *ir.Enum:
			r.add(d, e.Name, len(d.Variants))
		case *ir.Bitflags:
			flags = append(flags, d)
			sources = append(sources, e.Name)
		}
	}
	for i, d := range flags {
		r.add(d, sources[i], len(d.(*ir.Bitflags).Values))
	}
	return nil
}

func (r *run) constants() error {
	r.stage = log.StageConstants
	for _, c := range r.reg.Constants {
		r.context = c.Name
		k, err := GenerateConstant(c)
		if err != nil {
			return err
		}
		r.add(k, c.Name, 0)
	}
	return nil
}

// add appends a unit. A name that was already declared is skipped so the
// module never holds two declarations of one identifier.
func (r *run) add(d ir.Decl, source string, items int) {
	name := d.DeclName()
	if name != "" {
		if r.declared[name] {
			r.cfg.Logger.Warn("duplicate declaration name",
				slog.String("kind", string(d.Kind())),
				slog.String("name", name),
				slog.String("source", source),
			)
			r.traceSkip(d.Kind(), source, "duplicate name "+name)
			return
		}
		r.declared[name] = true
	}

	r.mod.Units = append(r.mod.Units, ir.NewUnit(d))
	r.trace(log.CategoryUnit, func(e *log.Event) {
		e.Unit = &log.UnitEvent{Kind: string(d.Kind()), Name: name, Source: source, Items: items}
	})
}

func (r *run) skip(kind ir.Kind, name, reason string) {
	r.cfg.Logger.Debug("skipped registry node",
		slog.String("kind", string(kind)),
		slog.String("name", name),
		slog.String("reason", reason),
	)
	r.traceSkip(kind, name, reason)
}

func (r *run) traceSkip(kind ir.Kind, name, reason string) {
	r.trace(log.CategorySkip, func(e *log.Event) {
		e.Skip = &log.SkipEvent{Kind: string(kind), Name: name, Reason: reason}
	})
}

// drop reports command references that did not resolve. They are left out
// of the output rather than failing the run, since a registry may refer to
// commands outside the loaded command set.
func (r *run) drop(origin string, names []string) {
	for _, name := range names {
		r.dropped++
		r.cfg.Logger.Debug("dropped unresolved command",
			slog.String("origin", origin),
			slog.String("command", name),
		)
		r.trace(log.CategoryDrop, func(e *log.Event) {
			e.Drop = &log.DropEvent{Origin: origin, Command: name}
		})
	}
}

func (r *run) trace(cat log.Category, fill func(*log.Event)) {
	e := log.Event{
		Timestamp: time.Now(),
		RunID:     r.cfg.RunID,
		Stage:     r.stage,
		Category:  cat,
	}
	fill(&e)
	r.cfg.Trace.Log(e)
}
