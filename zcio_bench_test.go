package zcio

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkReadWindow(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.bin")

	f, err := Open(path)
	require.NoError(b, err)
	defer f.Close()

	const size = 1 << 20

	w, err := f.WriteStart(size)
	require.NoError(b, err)
	for i := range w {
		w[i] = byte(i)
	}
	require.NoError(b, f.WriteEnd())

	b.SetBytes(size)
	b.ResetTimer()

	var sink byte
	for i := 0; i < b.N; i++ {
		_, _ = f.Seek(0, io.SeekStart)
		r := f.ReadStart(size)
		sink ^= r[len(r)-1]
		f.ReadEnd()
	}
	_ = sink
}

func BenchmarkWriteWindow(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.bin")

	f, err := Open(path)
	require.NoError(b, err)
	defer f.Close()

	const size = 4096

	b.SetBytes(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = f.Seek(0, io.SeekStart)
		w, err := f.WriteStart(size)
		if err == nil {
			w[0] = byte(i)
		}
		_ = f.WriteEnd()
	}
}
