package dexer_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/adapters/archive"
	"go.trai.ch/modkit/internal/adapters/fs"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports/mocks"
	"go.trai.ch/modkit/internal/engine/dexer"
	"go.uber.org/mock/gomock"
)

type dexerTestMocks struct {
	d8       *mocks.MockDexer
	progress *mocks.MockProgressFactory
	bar      *mocks.MockProgress
}

func setupDexerTest(t *testing.T, opts dexer.Options) (*dexer.Dexer, dexerTestMocks, domain.Layout) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := dexerTestMocks{
		d8:       mocks.NewMockDexer(ctrl),
		progress: mocks.NewMockProgressFactory(ctrl),
		bar:      mocks.NewMockProgress(ctrl),
	}
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	m.progress.EXPECT().New(gomock.Any(), gomock.Any()).Return(m.bar).AnyTimes()
	m.bar.EXPECT().Add(gomock.Any()).AnyTimes()
	m.bar.EXPECT().Finish().AnyTimes()

	layout := domain.NewLayout(t.TempDir())
	d := dexer.New(m.d8, fs.NewFileSystem(fs.NewWalker()), archive.NewZip(), m.progress, logger, layout, opts)
	return d, m, layout
}

func classNames(n int) []string {
	files := make([]string, n)
	for i := range files {
		files[i] = fmt.Sprintf("/cache/classes/core/classes/C%03d.class", i)
	}
	return files
}

// fakeClassDex writes one intermediate dex file per input class.
func fakeClassDex(_ context.Context, req *domain.DexRequest) error {
	for _, in := range req.Inputs {
		name := strings.TrimSuffix(filepath.Base(in), ".class") + ".dex"
		if err := os.WriteFile(filepath.Join(req.Output, name), []byte(in), domain.PrivateFilePerm); err != nil {
			return err
		}
	}
	return nil
}

func zipNames(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

func TestBatches(t *testing.T) {
	tests := []struct {
		n    int
		size int
		want []int
	}{
		{n: 0, size: 128, want: []int{}},
		{n: 1, size: 128, want: []int{1}},
		{n: 128, size: 128, want: []int{128}},
		{n: 129, size: 128, want: []int{128, 1}},
		{n: 300, size: 128, want: []int{128, 128, 44}},
		{n: 5, size: 2, want: []int{2, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_by_%d", tt.n, tt.size), func(t *testing.T) {
			files := classNames(tt.n)
			batches := dexer.Batches(files, tt.size)

			sizes := make([]int, 0, len(batches))
			var union []string
			for _, b := range batches {
				sizes = append(sizes, len(b))
				union = append(union, b...)
			}
			assert.Equal(t, tt.want, sizes)
			if tt.n == 0 {
				assert.Empty(t, union)
				return
			}
			assert.Equal(t, files, union)
		})
	}
}

func TestDexModule_EmptySetIsSkipped(t *testing.T) {
	d, _, layout := setupDexerTest(t, dexer.Options{})

	require.NoError(t, d.DexModule(context.Background(), "core", domain.ModifiedSet{}))
	assert.NoDirExists(t, layout.IntermediateDexDir("core"))
	assert.NoDirExists(t, layout.ModuleOutputDir("core"))
}

func TestDexModule_BatchesClassesThenMerges(t *testing.T) {
	toolchain := domain.Toolchain{Jars: []string{"/t/android.jar"}}
	d, m, layout := setupDexerTest(t, dexer.Options{Toolchain: toolchain, MinAPI: 17, BatchSize: 128})
	classes := classNames(300)

	var batches [][]string
	var merged []string
	gomock.InOrder(
		m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req *domain.DexRequest) error {
				require.Equal(t, domain.DexClasses, req.Mode)
				assert.Equal(t, []string{"/t/android.jar", layout.ModuleJar("core")}, req.Libraries)
				assert.Equal(t, toolchain.Jars, req.Classpath)
				batches = append(batches, req.Inputs)
				return fakeClassDex(ctx, req)
			}).Times(3),
		m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.DexRequest) error {
				require.Equal(t, domain.DexMerge, req.Mode)
				assert.Equal(t, layout.ModuleOutputDir("core"), req.Output)
				assert.Equal(t, toolchain.Jars, req.Libraries)
				assert.False(t, req.Release)
				merged = zipNames(t, req.Inputs[0])
				return nil
			}),
	)

	require.NoError(t, d.DexModule(context.Background(), "core", domain.ModifiedSet{Classes: classes}))

	require.Len(t, batches, 3)
	var union []string
	for _, b := range batches {
		assert.LessOrEqual(t, len(b), 128)
		union = append(union, b...)
	}
	assert.Equal(t, classes, union)
	assert.Len(t, merged, 300)
}

func TestDexModule_LibrariesFirstIntoLibDex(t *testing.T) {
	d, m, layout := setupDexerTest(t, dexer.Options{Release: true})

	stale := filepath.Join(layout.LibraryDexDir("core"), "old.dex")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), domain.DirPerm))
	require.NoError(t, os.WriteFile(stale, []byte("old"), domain.PrivateFilePerm))

	gomock.InOrder(
		m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.DexRequest) error {
				require.Equal(t, domain.DexLibrary, req.Mode)
				assert.Equal(t, []string{"/cache/lib.zip"}, req.Inputs)
				assert.Equal(t, layout.LibraryDexDir("core"), req.Output)
				assert.NoFileExists(t, stale)
				return os.WriteFile(filepath.Join(req.Output, "classes.dex"), []byte("lib"), domain.PrivateFilePerm)
			}),
		m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.DexRequest) error {
				require.Equal(t, domain.DexMerge, req.Mode)
				assert.True(t, req.Release)
				assert.Equal(t, []string{"lib-dex/classes.dex"}, zipNames(t, req.Inputs[0]))
				return nil
			}),
	)

	set := domain.ModifiedSet{LibrariesChanged: true, LibraryArchive: "/cache/lib.zip"}
	require.NoError(t, d.DexModule(context.Background(), "core", set))
}

func TestDexModule_RemovedLibrariesClearLibDex(t *testing.T) {
	d, m, layout := setupDexerTest(t, dexer.Options{})

	stale := filepath.Join(layout.LibraryDexDir("core"), "classes.dex")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), domain.DirPerm))
	require.NoError(t, os.WriteFile(stale, []byte("old"), domain.PrivateFilePerm))

	m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.DexRequest) error {
			require.Equal(t, domain.DexMerge, req.Mode)
			assert.Empty(t, zipNames(t, req.Inputs[0]))
			return nil
		})

	require.NoError(t, d.DexModule(context.Background(), "core", domain.ModifiedSet{LibrariesChanged: true}))
	assert.NoFileExists(t, stale)
}

func TestDexModule_PackagesHistoricalOutput(t *testing.T) {
	d, m, layout := setupDexerTest(t, dexer.Options{})

	previous := filepath.Join(layout.IntermediateDexDir("core"), "com", "Old.dex")
	require.NoError(t, os.MkdirAll(filepath.Dir(previous), domain.DirPerm))
	require.NoError(t, os.WriteFile(previous, []byte("old"), domain.PrivateFilePerm))

	m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).DoAndReturn(fakeClassDex)
	m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.DexRequest) error {
			names := zipNames(t, req.Inputs[0])
			slices.Sort(names)
			assert.Equal(t, []string{"C000.dex", "com/Old.dex"}, names)
			return nil
		})

	require.NoError(t, d.DexModule(context.Background(), "core", domain.ModifiedSet{Classes: classNames(1)}))
}

func TestDexModule_MergeClearsStaleDexOnly(t *testing.T) {
	d, m, layout := setupDexerTest(t, dexer.Options{})
	out := layout.ModuleOutputDir("core")
	require.NoError(t, os.MkdirAll(filepath.Join(out, "lib"), domain.DirPerm))
	for _, name := range []string{"classes.dex", "classes2.dex", "manifest", filepath.Join("lib", "keep.dex")} {
		require.NoError(t, os.WriteFile(filepath.Join(out, name), []byte("x"), domain.PrivateFilePerm))
	}

	m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).DoAndReturn(fakeClassDex)
	m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.DexRequest) error {
			assert.NoFileExists(t, filepath.Join(out, "classes.dex"))
			assert.NoFileExists(t, filepath.Join(out, "classes2.dex"))
			assert.FileExists(t, filepath.Join(out, "manifest"))
			assert.FileExists(t, filepath.Join(out, "lib", "keep.dex"))
			return nil
		})

	require.NoError(t, d.DexModule(context.Background(), "core", domain.ModifiedSet{Classes: classNames(1)}))
}

func TestDexModule_BatchFailureStopsModule(t *testing.T) {
	d, m, _ := setupDexerTest(t, dexer.Options{BatchSize: 2})
	failure := &domain.ProcessError{Tool: "d8", Code: 7, Err: errors.New("exit status 7")}

	gomock.InOrder(
		m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).DoAndReturn(fakeClassDex),
		m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).Return(failure),
	)

	err := d.DexModule(context.Background(), "core", domain.ModifiedSet{Classes: classNames(5)})
	require.Error(t, err)
	assert.Equal(t, 7, domain.ExitCodeOf(err))
}

func TestDexModule_LibraryFailureStopsModule(t *testing.T) {
	d, m, _ := setupDexerTest(t, dexer.Options{})
	m.d8.EXPECT().Dex(gomock.Any(), gomock.Any()).
		Return(&domain.ProcessError{Tool: "d8", Code: 1, Err: errors.New("exit status 1")})

	set := domain.ModifiedSet{Classes: classNames(3), LibrariesChanged: true, LibraryArchive: "/lib.zip"}
	require.Error(t, d.DexModule(context.Background(), "core", set))
}
