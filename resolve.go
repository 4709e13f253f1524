package hvsampledata

import (
	"context"
	"fmt"
)

// resolve is the dispatch core: it turns a dataset request into exactly one
// loader invocation.
//
// Resolution order:
//  1. Omitted engine -> dataset default engine
//  2. Omitted lazy -> false (explicitly, even for engines whose natural
//     mode is lazy)
//  3. Engine must be in the dataset's supported set
//  4. Laziness must be honorable: lazy on an eager-only engine and eager on
//     the lazy-only sif engine are both rejected, never silently downgraded
//  5. Engine options, if any, must belong to the resolved engine
//  6. Locate the file, fetch the loader, invoke it
//
// No retries: any failure is terminal for the call.
func resolve(ctx context.Context, desc Descriptor, req loadRequest) (any, error) {
	engine := desc.DefaultEngine
	if req.engine != "" {
		id, ok := parseEngine(req.engine)
		if !ok {
			return nil, newUnsupportedEngine(desc.Name, req.engine, desc.Engines)
		}
		engine = id
	}

	if !desc.SupportsEngine(engine) {
		return nil, newUnsupportedEngine(desc.Name, string(engine), desc.Engines)
	}

	if req.lazy && !lazyCapable[engine] {
		return nil, newIncompatibleOptions(desc.Name, engine,
			fmt.Sprintf("engine %q has no lazy representation; remove WithLazy(true) or pick arrow or sif", engine))
	}
	if !req.lazy && lazyOnly[engine] {
		return nil, newIncompatibleOptions(desc.Name, engine,
			fmt.Sprintf("engine %q is deferred-only; request it with WithLazy(true)", engine))
	}

	req.engineOpts = normalizeEngineOptions(req.engineOpts)
	if req.engineOpts != nil && req.engineOpts.engine() != engine {
		return nil, newIncompatibleOptions(desc.Name, engine,
			fmt.Sprintf("engine options %T do not configure engine %q", req.engineOpts, engine))
	}

	if req.totalPoints != 0 && desc.Storage != StorageGenerated {
		return nil, newIncompatibleOptions(desc.Name, engine,
			"WithTotalPoints applies only to generated datasets")
	}

	path, err := locate(ctx, desc, req.totalPoints)
	if err != nil {
		return nil, err
	}

	ld, ok := loaders[registryKey{desc.Kind, engine, desc.Format}]
	if !ok {
		return nil, newUnsupportedEngine(desc.Name, string(engine), desc.Engines)
	}

	return ld(ctx, desc, path, req.lazy, req.engineOpts)
}
