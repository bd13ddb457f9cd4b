package main

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeozeozeo/gopsp/emulator"
)

func writeImage(t *testing.T, words ...uint32) string {
	t.Helper()
	data := make([]byte, 4*len(words))
	for n, w := range words {
		binary.LittleEndian.PutUint32(data[n*4:], w)
	}
	path := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func testConfig(image string) config {
	return config{
		image: image,
		load:  addrFlag{val: DEFAULT_LOAD_ADDR},
		batch: 100,
		limit: 1000,
	}
}

func TestStartRunsToBreak(t *testing.T) {
	// addiu v0, zr, 5; break
	cfg := testConfig(writeImage(t, 0x24020005, 0x0000000d))
	assert.NoError(t, start(cfg))
}

func TestStartKeepsProfileOnFault(t *testing.T) {
	cfg := testConfig(writeImage(t, 0x24020005, 0xfc000000))
	cfg.cpuProfile = t.TempDir()

	err := start(cfg)
	var invalid *emulator.InvalidOpcodeError
	require.True(t, errors.As(err, &invalid), "got %v", err)
	assert.Equal(t, uint32(DEFAULT_LOAD_ADDR+4), invalid.PC)
	assert.FileExists(t, filepath.Join(cfg.cpuProfile, "cpu.pprof"))
}

func TestStartKeepsProfileOnLoadError(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.bin"))
	cfg.cpuProfile = t.TempDir()

	assert.Error(t, start(cfg))
	assert.FileExists(t, filepath.Join(cfg.cpuProfile, "cpu.pprof"))
}

func TestAddrFlag(t *testing.T) {
	var f addrFlag
	require.NoError(t, f.Set("0x08804000"))
	assert.True(t, f.set)
	assert.Equal(t, uint32(0x08804000), f.val)
	assert.Equal(t, "0x08804000", f.String())
	assert.Error(t, f.Set("0x100000000"))
}
