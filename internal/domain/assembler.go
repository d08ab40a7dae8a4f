package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"zipup.dev/pkg/zipup/internal/adapter"
	m "zipup.dev/pkg/zipup/internal/model"
)

const sideFileMode = 0o644

// AssembleArgs controls how one build result is packaged.
type AssembleArgs struct {
	ArchivePath m.Path
	SideDir     m.Path
	Stem        string
	Ext         string
	Compression int
	License     string
	Ignore      m.IgnoreSet
}

// Assembly describes what was written for one build result.
type Assembly struct {
	ArchivePath m.Path
	SideFiles   []m.Path
	Entries     []string
}

// Assembler turns a build result into a finalized archive plus side files.
type Assembler interface {
	Assemble(ctx context.Context, result m.BuildResult, args AssembleArgs) (Assembly, error)
}

type assembler struct {
	fsAdapter adapter.FSAdapter
	archiver  adapter.Archiver
}

// NewAssembler constructs an Assembler writing through the given adapters.
func NewAssembler(fsAdapter adapter.FSAdapter, archiver adapter.Archiver) Assembler {
	return &assembler{fsAdapter: fsAdapter, archiver: archiver}
}

func (a *assembler) Assemble(ctx context.Context, result m.BuildResult, args AssembleArgs) (Assembly, error) {
	if err := ctx.Err(); err != nil {
		return Assembly{}, err
	}

	if args.Stem == "" {
		args.Stem = m.DefaultFilename
	}

	if args.ArchivePath == "" {
		args.ArchivePath = m.DefaultArchiveName
	}

	if err := a.fsAdapter.MkdirAll(args.SideDir); err != nil {
		slog.Error("Failed to create side directory", "dir", args.SideDir, "error", err)
		return Assembly{}, fmt.Errorf("%w: create %s: %w", m.ErrArchiveIO, args.SideDir, err)
	}

	sink, err := a.archiver.Create(args.ArchivePath, args.Compression)
	if err != nil {
		slog.Error("Failed to open archive", "path", args.ArchivePath, "error", err)
		return Assembly{}, fmt.Errorf("%w: %w", m.ErrArchiveIO, err)
	}

	assembly := Assembly{ArchivePath: args.ArchivePath}
	mainName := args.Stem + args.Ext

	var sideFiles errgroup.Group

	writeSide := func(name string, content []byte) {
		path := m.Path(filepath.Join(string(args.SideDir), filepath.FromSlash(name)))
		assembly.SideFiles = append(assembly.SideFiles, path)

		sideFiles.Go(func() error {
			if err := a.fsAdapter.WriteFile(path, content, sideFileMode); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			return nil
		})
	}

	streamErr := a.stream(sink, result, args, mainName, writeSide, &assembly)

	closeErr := sink.Close()
	sideErr := sideFiles.Wait()

	if err := errors.Join(streamErr, closeErr, sideErr); err != nil {
		slog.Error("Archive assembly failed", "path", args.ArchivePath, "error", err)

		if rmErr := a.fsAdapter.RemoveAll(args.ArchivePath); rmErr != nil {
			slog.Warn("Failed to remove partial archive", "path", args.ArchivePath, "error", rmErr)
		}

		return Assembly{}, fmt.Errorf("%w: %w", m.ErrArchiveIO, err)
	}

	slog.Debug("Assembled archive", "path", args.ArchivePath, "entries", len(assembly.Entries), "sideFiles", len(assembly.SideFiles))

	return assembly, nil
}

// stream appends entries in archive order: code, assets by name, symlinks by
// link path. Side files are dispatched to writeSide as they are met.
func (a *assembler) stream(
	sink adapter.ArchiveSink,
	result m.BuildResult,
	args AssembleArgs,
	mainName string,
	writeSide func(name string, content []byte),
	assembly *Assembly,
) error {
	if err := sink.AddFile(mainName, []byte(result.Code), m.CodeMode(result.Code)); err != nil {
		return err
	}

	assembly.Entries = append(assembly.Entries, mainName)

	if result.HasMap() {
		writeSide(mainName+".map", []byte(result.Map))
	}

	for _, name := range sortedKeys(result.Assets) {
		asset := result.Assets[name]

		if args.License != "" && name == args.License {
			writeSide(name, asset.Content)
			continue
		}

		if !args.Ignore.Allows(name) {
			slog.Debug("Ignoring asset", "name", name)
			continue
		}

		if err := sink.AddFile(name, asset.Content, asset.Mode); err != nil {
			return err
		}

		assembly.Entries = append(assembly.Entries, name)
	}

	for _, link := range sortedKeys(result.Symlinks) {
		if err := sink.AddSymlink(link, result.Symlinks[link]); err != nil {
			return err
		}

		assembly.Entries = append(assembly.Entries, link)
	}

	return nil
}

func sortedKeys[V any](values map[string]V) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
