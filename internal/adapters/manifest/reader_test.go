package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/adapters/manifest"
	"go.trai.ch/modkit/internal/core/domain"
)

func TestReader_Read(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    domain.Manifest
		wantErr error
	}{
		{
			name:    "full",
			content: ptr(`{"source-dirs": ["src"], "library-dirs": ["lib", "extra"]}`),
			want:    domain.Manifest{SourceDirs: []string{"src"}, LibraryDirs: []string{"lib", "extra"}},
		},
		{
			name:    "no libraries",
			content: ptr(`{"source-dirs": ["src/main"]}`),
			want:    domain.Manifest{SourceDirs: []string{"src/main"}},
		},
		{
			name:    "empty sources",
			content: ptr(`{"source-dirs": []}`),
			want:    domain.Manifest{SourceDirs: []string{}},
		},
		{
			name:    "missing sources",
			content: ptr(`{"library-dirs": ["lib"]}`),
			wantErr: domain.ErrManifestMissingSourceDirs,
		},
		{
			name:    "invalid json",
			content: ptr(`{"source-dirs": [`),
			wantErr: domain.ErrManifestParseFailed,
		},
		{
			name:    "missing file",
			wantErr: domain.ErrManifestReadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != nil {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest"), []byte(*tt.content), domain.PrivateFilePerm))
			}

			got, err := manifest.NewReader().Read(dir)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr(s string) *string { return &s }
