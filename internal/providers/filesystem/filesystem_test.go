package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/fileshell/internal/codec"
	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/GriffinCanCode/fileshell/internal/stream"
	"github.com/GriffinCanCode/fileshell/internal/testutil"
)

const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func newTestProvider(opts ...Option) *Provider {
	return NewProvider(stream.New(stream.Options{ChunkSize: stream.MinChunkSize}), opts...)
}

func bytesProcessed(t *testing.T, m *monitoring.Metrics, op string) float64 {
	t.Helper()
	metric := &dto.Metric{}
	require.NoError(t, m.BytesProcessed.WithLabelValues(op).Write(metric))
	return metric.GetCounter().GetValue()
}

func exec(t *testing.T, p *Provider, sess *session.Session, line string) error {
	t.Helper()
	cmd, ok := types.ParseCommand(line)
	require.True(t, ok)
	return p.Execute(context.Background(), cmd, sess)
}

func TestDefinition(t *testing.T) {
	def := newTestProvider().Definition()
	assert.Equal(t, "filesystem", def.ID)

	var verbs []string
	for _, tool := range def.Tools {
		verbs = append(verbs, tool.Verb)
	}
	assert.ElementsMatch(t, []string{
		"up", "cd", "ls", "cat", "add", "rn", "rm",
		"cp", "mv", "hash", "compress", "decompress",
	}, verbs)

	for _, tool := range def.Tools {
		switch tool.Verb {
		case "up", "ls":
			assert.Equal(t, 0, tool.MaxArgs(), tool.Verb)
		case "rn", "cp", "mv", "compress", "decompress":
			assert.Equal(t, 2, tool.Required(), tool.Verb)
		case "hash":
			assert.Equal(t, 1, tool.Required())
			assert.Equal(t, 2, tool.MaxArgs())
		default:
			assert.Equal(t, 1, tool.Required(), tool.Verb)
		}
	}
}

func TestUnknownVerb(t *testing.T) {
	sess, _ := testutil.NewSession(t)
	err := exec(t, newTestProvider(), sess, "touch x")
	assert.ErrorIs(t, err, errs.ErrInvalidCommand)
}

func TestFileLifecycleScenario(t *testing.T) {
	sess, out := testutil.NewSession(t)
	home := sess.Dir.Cwd()
	p := newTestProvider()

	require.NoError(t, exec(t, p, sess, "add note.txt"))
	info, err := os.Stat(filepath.Join(home, "note.txt"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	require.NoError(t, exec(t, p, sess, "cat note.txt"))
	assert.Empty(t, out.String(), "empty file prints nothing")

	require.NoError(t, exec(t, p, sess, "rn note.txt final.txt"))
	assert.FileExists(t, filepath.Join(home, "final.txt"))
	assert.NoFileExists(t, filepath.Join(home, "note.txt"))

	require.NoError(t, exec(t, p, sess, "rm final.txt"))
	assert.NoFileExists(t, filepath.Join(home, "final.txt"))

	err = exec(t, p, sess, "cat final.txt")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Equal(t, home, sess.Dir.Cwd())
}

func TestAdd(t *testing.T) {
	sess, _ := testutil.NewSession(t)
	dir := sess.Dir.Cwd()
	p := newTestProvider()

	testutil.WriteFile(t, dir, "keep.txt", "precious")

	err := exec(t, p, sess, "add keep.txt")
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	assert.Equal(t, "precious", testutil.ReadFile(t, filepath.Join(dir, "keep.txt")), "must not truncate")

	for _, name := range []string{"sub/x.txt", "..", "/abs.txt"} {
		err := exec(t, p, sess, "add "+name)
		assert.ErrorIs(t, err, errs.ErrInvalidCommand, name)
		assert.True(t, errs.IsInputError(err))
	}
}

func TestCat(t *testing.T) {
	sess, out := testutil.NewSession(t)
	dir := sess.Dir.Cwd()
	p := newTestProvider()

	testutil.WriteFile(t, dir, "lines.txt", "one\ntwo\n")
	testutil.WriteFile(t, dir, "bare.txt", "no newline")
	testutil.Mkdir(t, dir, "folder")

	require.NoError(t, exec(t, p, sess, "cat lines.txt"))
	assert.Equal(t, "one\ntwo\n", out.String())

	out.Reset()
	require.NoError(t, exec(t, p, sess, "cat bare.txt"))
	assert.Equal(t, "no newline\n", out.String())

	out.Reset()
	assert.ErrorIs(t, exec(t, p, sess, "cat folder"), errs.ErrIsADirectory)
	assert.Empty(t, out.String())
}

func TestCatLargeFileStreams(t *testing.T) {
	sess, out := testutil.NewSession(t)
	content := strings.Repeat("0123456789abcdef", 4096) // 64 KiB over 4 KiB chunks
	testutil.WriteFile(t, sess.Dir.Cwd(), "big.txt", content)

	m := monitoring.NewMetrics()
	p := newTestProvider(WithMetrics(m))

	require.NoError(t, exec(t, p, sess, "cat big.txt"))
	assert.Equal(t, content+"\n", out.String())
	assert.Equal(t, float64(len(content)), bytesProcessed(t, m, "cat"))
}

func TestRename(t *testing.T) {
	sess, _ := testutil.NewSession(t)
	dir := sess.Dir.Cwd()
	p := newTestProvider()

	sub := testutil.Mkdir(t, dir, "sub")
	testutil.WriteFile(t, sub, "inner.txt", "data")
	testutil.WriteFile(t, dir, "taken.txt", "other")

	// the new name always lands in the working directory
	require.NoError(t, exec(t, p, sess, "rn sub/inner.txt moved.txt"))
	assert.NoFileExists(t, filepath.Join(sub, "inner.txt"))
	assert.Equal(t, "data", testutil.ReadFile(t, filepath.Join(dir, "moved.txt")))

	err := exec(t, p, sess, "rn moved.txt taken.txt")
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	assert.Equal(t, "data", testutil.ReadFile(t, filepath.Join(dir, "moved.txt")))
	assert.Equal(t, "other", testutil.ReadFile(t, filepath.Join(dir, "taken.txt")))

	assert.ErrorIs(t, exec(t, p, sess, "rn ghost.txt x.txt"), errs.ErrNotFound)
	assert.ErrorIs(t, exec(t, p, sess, "rn moved.txt sub/x.txt"), errs.ErrInvalidCommand)
}

func TestDelete(t *testing.T) {
	sess, _ := testutil.NewSession(t)
	dir := sess.Dir.Cwd()
	p := newTestProvider()

	testutil.Mkdir(t, dir, "folder")
	assert.ErrorIs(t, exec(t, p, sess, "rm folder"), errs.ErrIsADirectory)
	assert.DirExists(t, filepath.Join(dir, "folder"))

	assert.ErrorIs(t, exec(t, p, sess, "rm ghost.txt"), errs.ErrNotFound)

	path := testutil.WriteFile(t, dir, "folder/f.txt", "x")
	require.NoError(t, exec(t, p, sess, "rm "+path))
	assert.NoFileExists(t, path)
}

func TestNavigation(t *testing.T) {
	sess, _ := testutil.NewSession(t)
	home := sess.Dir.Cwd()
	p := newTestProvider()

	testutil.Mkdir(t, home, "a/b")
	testutil.WriteFile(t, home, "file.txt", "")

	require.NoError(t, exec(t, p, sess, "cd a/b"))
	assert.Equal(t, filepath.Join(home, "a", "b"), sess.Dir.Cwd())

	require.NoError(t, exec(t, p, sess, "up"))
	assert.Equal(t, filepath.Join(home, "a"), sess.Dir.Cwd())

	require.NoError(t, exec(t, p, sess, "cd .."))
	assert.Equal(t, home, sess.Dir.Cwd())

	err := exec(t, p, sess, "cd /nonexistent-fileshell-test")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Equal(t, home, sess.Dir.Cwd())

	err = exec(t, p, sess, "cd file.txt")
	assert.ErrorIs(t, err, errs.ErrNotADirectory)
	assert.Equal(t, home, sess.Dir.Cwd())
}

func TestUpAtRoot(t *testing.T) {
	root := filepath.VolumeName(os.TempDir()) + string(filepath.Separator)
	sess, _ := testutil.NewSessionAt(t, root)
	p := newTestProvider()

	require.NoError(t, exec(t, p, sess, "up"))
	require.NoError(t, exec(t, p, sess, "up"))
	assert.Equal(t, root, sess.Dir.Cwd())
}

func TestHomeExpansion(t *testing.T) {
	sess, _ := testutil.NewSession(t)
	home := t.TempDir()
	testutil.Mkdir(t, home, "docs")
	p := newTestProvider(WithHome(home))

	require.NoError(t, exec(t, p, sess, "cd ~/docs"))
	assert.Equal(t, filepath.Join(home, "docs"), sess.Dir.Cwd())

	require.NoError(t, exec(t, p, sess, "cd ~"))
	assert.Equal(t, home, sess.Dir.Cwd())
}

func TestList(t *testing.T) {
	sess, out := testutil.NewSession(t)
	dir := sess.Dir.Cwd()
	p := newTestProvider()

	testutil.Mkdir(t, dir, "zeta")
	testutil.Mkdir(t, dir, "alpha")
	testutil.WriteFile(t, dir, "b.txt", "")
	testutil.WriteFile(t, dir, "a.txt", "")
	hasLink := os.Symlink(filepath.Join(dir, "a.txt"), filepath.Join(dir, "link")) == nil

	require.NoError(t, exec(t, p, sess, "ls"))
	listing := out.String()

	order := []string{"alpha", "zeta", "a.txt", "b.txt"}
	if hasLink {
		order = append(order, "link")
	}
	last := -1
	for _, name := range order {
		idx := strings.Index(listing, " "+name+" ")
		require.GreaterOrEqual(t, idx, 0, "missing %s in\n%s", name, listing)
		assert.Greater(t, idx, last, "%s out of order", name)
		last = idx
	}
	assert.Contains(t, listing, "directory")
	assert.Contains(t, listing, "file")
	if hasLink {
		assert.Contains(t, listing, "symlink")
	}
}

func TestListUnreadable(t *testing.T) {
	sess, _ := testutil.NewSession(t)
	dir := sess.Dir.Cwd()
	p := newTestProvider()

	// the working directory disappears underneath the session
	require.NoError(t, os.Remove(dir))
	err := exec(t, p, sess, "ls")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Equal(t, dir, sess.Dir.Cwd())
}

func TestSortEntries(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "B.txt", "")
	testutil.WriteFile(t, dir, "a.txt", "")
	testutil.Mkdir(t, dir, "Docs")
	testutil.Mkdir(t, dir, "bin")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	got := sortEntries(entries)
	require.Len(t, got, 4)
	assert.Equal(t, []listed{
		{"Docs", TypeDirectory},
		{"bin", TypeDirectory},
		{"B.txt", TypeFile},
		{"a.txt", TypeFile},
	}, got)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, TypeDirectory, classify(os.ModeDir))
	assert.Equal(t, TypeFile, classify(0))
	assert.Equal(t, TypeSymlink, classify(os.ModeSymlink))
	assert.Equal(t, TypeOther, classify(os.ModeNamedPipe))
	assert.Equal(t, TypeOther, classify(os.ModeDevice|os.ModeCharDevice))
}

func TestCopyAndMove(t *testing.T) {
	sess, _ := testutil.NewSession(t)
	dir := sess.Dir.Cwd()
	m := monitoring.NewMetrics()
	p := newTestProvider(WithMetrics(m))

	content := strings.Repeat("payload ", 2000)
	testutil.WriteFile(t, dir, "src.txt", content)
	testutil.Mkdir(t, dir, "copies")
	testutil.Mkdir(t, dir, "moved")

	require.NoError(t, exec(t, p, sess, "cp src.txt copies"))
	assert.Equal(t, content, testutil.ReadFile(t, filepath.Join(dir, "copies", "src.txt")))
	assert.Equal(t, content, testutil.ReadFile(t, filepath.Join(dir, "src.txt")))

	// a second copy must not clobber the first
	assert.ErrorIs(t, exec(t, p, sess, "cp src.txt copies"), errs.ErrAlreadyExists)

	require.NoError(t, exec(t, p, sess, "mv src.txt moved"))
	assert.Equal(t, content, testutil.ReadFile(t, filepath.Join(dir, "moved", "src.txt")))
	assert.NoFileExists(t, filepath.Join(dir, "src.txt"))

	assert.Equal(t, float64(len(content)), bytesProcessed(t, m, "cp"))
	assert.Equal(t, float64(len(content)), bytesProcessed(t, m, "mv"))

	assert.ErrorIs(t, exec(t, p, sess, "cp ghost.txt copies"), errs.ErrNotFound)
	assert.ErrorIs(t, exec(t, p, sess, "mv moved/src.txt nowhere"), errs.ErrNotFound)
	assert.FileExists(t, filepath.Join(dir, "moved", "src.txt"))
}

func TestHash(t *testing.T) {
	sess, out := testutil.NewSession(t)
	dir := sess.Dir.Cwd()
	p := newTestProvider()

	testutil.WriteFile(t, dir, "empty", "")

	require.NoError(t, exec(t, p, sess, "hash empty"))
	assert.Equal(t, emptySHA256+"\n", out.String())

	out.Reset()
	require.NoError(t, exec(t, p, sess, "hash empty --algorithm=sha512"))
	assert.Equal(t, "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce"+
		"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e\n", out.String())

	out.Reset()
	assert.ErrorIs(t, exec(t, p, sess, "hash empty --algo=md5"), errs.ErrInvalidCommand)
	assert.ErrorIs(t, exec(t, p, sess, "hash empty --algorithm=md5"), errs.ErrInvalidSubcommand)
	assert.ErrorIs(t, exec(t, p, sess, "hash ghost"), errs.ErrNotFound)
	assert.Empty(t, out.String(), "failures print no digest")
}

func TestHashDeterministic(t *testing.T) {
	sess, out := testutil.NewSession(t)
	testutil.WriteFile(t, sess.Dir.Cwd(), "f.bin", strings.Repeat("xyz", 10000))
	p := newTestProvider()

	require.NoError(t, exec(t, p, sess, "hash f.bin"))
	first := out.String()
	out.Reset()
	require.NoError(t, exec(t, p, sess, "hash f.bin"))
	assert.Equal(t, first, out.String())
	assert.Len(t, strings.TrimSpace(first), 64)
}

func TestCompressRoundTrip(t *testing.T) {
	for _, name := range codec.Names() {
		t.Run(name, func(t *testing.T) {
			c, err := codec.Lookup(name)
			require.NoError(t, err)

			sess, _ := testutil.NewSession(t)
			dir := sess.Dir.Cwd()
			p := newTestProvider(WithCodec(c))

			content := strings.Repeat("compress me please ", 5000)
			testutil.WriteFile(t, dir, "orig.txt", content)

			require.NoError(t, exec(t, p, sess, "compress orig.txt orig.packed"))
			require.NoError(t, exec(t, p, sess, "decompress orig.packed restored.txt"))
			assert.Equal(t, content, testutil.ReadFile(t, filepath.Join(dir, "restored.txt")))

			// existing destinations are never overwritten
			assert.ErrorIs(t, exec(t, p, sess, "compress orig.txt restored.txt"), errs.ErrAlreadyExists)
			assert.Equal(t, content, testutil.ReadFile(t, filepath.Join(dir, "restored.txt")))
		})
	}
}

func TestCompressIntoDirectory(t *testing.T) {
	sess, _ := testutil.NewSession(t)
	dir := sess.Dir.Cwd()
	p := newTestProvider()

	testutil.WriteFile(t, dir, "doc.txt", "hello")
	out := testutil.Mkdir(t, dir, "out")
	back := testutil.Mkdir(t, dir, "back")

	require.NoError(t, exec(t, p, sess, "compress doc.txt out"))
	assert.FileExists(t, filepath.Join(out, "doc.txt.br"))

	require.NoError(t, exec(t, p, sess, "decompress out/doc.txt.br back"))
	assert.Equal(t, "hello", testutil.ReadFile(t, filepath.Join(back, "doc.txt")))
}

func TestDecompressGarbage(t *testing.T) {
	tests := []struct {
		codec string
		name  string
		data  string
	}{
		{"gzip", "junk.gz", "this is definitely not gzip data"},
		{"brotli", "junk.br", "hello world\n"},
	}

	for _, tt := range tests {
		t.Run(tt.codec, func(t *testing.T) {
			sess, out := testutil.NewSession(t)
			dir := sess.Dir.Cwd()
			c, err := codec.Lookup(tt.codec)
			require.NoError(t, err)
			p := newTestProvider(WithCodec(c))

			testutil.WriteFile(t, dir, tt.name, tt.data)

			err = exec(t, p, sess, "decompress "+tt.name+" junk.txt")
			assert.ErrorIs(t, err, errs.ErrCorruptData)
			assert.Empty(t, out.String())
			assert.NoFileExists(t, filepath.Join(dir, "junk.txt"))
		})
	}
}

func TestDecompressGarbageWithDefaultCodec(t *testing.T) {
	sess, _ := testutil.NewSession(t)
	dir := sess.Dir.Cwd()
	p := newTestProvider()

	testutil.WriteFile(t, dir, "notes.br", "not brotli")

	err := exec(t, p, sess, "decompress notes.br notes.txt")
	assert.ErrorIs(t, err, errs.ErrCorruptData)
	assert.NoFileExists(t, filepath.Join(dir, "notes.txt"))
}
