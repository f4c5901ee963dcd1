package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanconv.dev/pkg/scanconv/internal/adapter"
	"scanconv.dev/pkg/scanconv/internal/codec"
	m "scanconv.dev/pkg/scanconv/internal/model"
)

// recordingUI captures everything the workflow displays.
type recordingUI struct {
	mu           sync.Mutex
	diagnostics  []m.Diagnostic
	summaries    []m.RunReport
	verification []m.VerifyResult
	diffs        []string
}

func (u *recordingUI) DisplayDiagnostic(_ context.Context, diagnostic m.Diagnostic) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.diagnostics = append(u.diagnostics, diagnostic)
}

func (u *recordingUI) DisplaySummary(_ context.Context, report m.RunReport) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.summaries = append(u.summaries, report)
}

func (u *recordingUI) DisplayVerification(_ context.Context, results []m.VerifyResult) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.verification = append(u.verification, results...)
}

func (u *recordingUI) DisplayDiff(_ context.Context, _, _ m.Path, diff string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.diffs = append(u.diffs, diff)
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// readFailingAdapter fails to read any file with the given base name.
type readFailingAdapter struct {
	*adapter.LocalSourceFSAdapter
	name string
}

func (a readFailingAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if filepath.Base(string(path)) == a.name {
		return nil, os.ErrPermission
	}

	return a.LocalSourceFSAdapter.ReadFile(ctx, path)
}

func newTestWorkflow(clock Clock) (Workflow, *recordingUI) {
	return newTestWorkflowWithFS(adapter.NewLocalSourceFSAdapter(), clock)
}

func newTestWorkflowWithFS(fsAdapter adapter.SourceFSAdapter, clock Clock) (Workflow, *recordingUI) {
	ui := &recordingUI{}

	return NewWorkflow(
		fsAdapter,
		adapter.NewReportStore(),
		ui,
		NewGroupBuilder(fsAdapter, codec.New()),
		clock,
	), ui
}

const londonScan = `# UK, London
T 522000000 8MHz 2/3 NONE QAM64 8k 1/32 NONE
T 474000000 8MHz 3/4 NONE QAM16 2k 1/32 NONE
`

const londonDocument = `# this file is automatically generated from http://linuxtv.org/hg/dvb-apps
[date]
2024-03-01
[dvb-t/uk-London]
T 474000000 8MHz 3/4 NONE QAM16 2k 1/32 NONE
T 522000000 8MHz 2/3 NONE QAM64 8k 1/32 NONE
`

func TestWorkflow_Convert(t *testing.T) {
	root := newScanRoot(t)
	writeScanFile(t, root, m.Terrestrial, "uk-London", londonScan)
	output := filepath.Join(t.TempDir(), "channels.dtv")

	wf, ui := newTestWorkflow(fixedClock(testDate))

	err := wf.Convert(context.Background(), ConvertArgs{
		ScanRoot:   m.Path(root),
		Output:     m.Path(output),
		Provenance: DefaultProvenance,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, londonDocument+"# sha1sum "+sha1Hex(londonDocument)+"\n", string(content))

	assert.Empty(t, ui.diagnostics)
	require.Len(t, ui.summaries, 1)
	assert.Equal(t, sha1Hex(londonDocument), ui.summaries[0].Digest)
	assert.Equal(t, []m.GroupSummary{{Name: "dvb-t/uk-London", Variant: m.Terrestrial, Descriptors: 2}}, ui.summaries[0].Groups)
}

func TestWorkflow_Convert_DefaultsProvenance(t *testing.T) {
	root := newScanRoot(t)
	writeScanFile(t, root, m.Terrestrial, "uk-London", londonScan)
	output := filepath.Join(t.TempDir(), "channels.dtv")

	wf, _ := newTestWorkflow(fixedClock(testDate))
	require.NoError(t, wf.Convert(context.Background(), ConvertArgs{ScanRoot: m.Path(root), Output: m.Path(output)}))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), londonDocument))
}

func TestWorkflow_Convert_Idempotent(t *testing.T) {
	root := newScanRoot(t)
	writeScanFile(t, root, m.Terrestrial, "uk-London", londonScan)
	writeScanFile(t, root, m.Satellite, "Astra-19.2E", "S 12551500 V 22000000 5/6\nS 10714250 H 22000000 5/6\n")
	output := filepath.Join(t.TempDir(), "channels.dtv")

	wf, _ := newTestWorkflow(fixedClock(testDate))

	require.NoError(t, wf.Convert(context.Background(), ConvertArgs{ScanRoot: m.Path(root), Output: m.Path(output)}))
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	require.NoError(t, wf.Convert(context.Background(), ConvertArgs{ScanRoot: m.Path(root), Output: m.Path(output)}))
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Less(t, strings.Index(string(first), "[dvb-s/"), strings.Index(string(first), "[dvb-t/"))
}

func TestWorkflow_Convert_WarningsAreReported(t *testing.T) {
	root := newScanRoot(t)
	writeScanFile(t, root, m.ATSC, "us-ATSC", "A\t57028615\t8VSB\n")
	writeScanFile(t, root, m.Cable, "de-Empty", "# nothing\n")
	output := filepath.Join(t.TempDir(), "channels.dtv")

	wf, ui := newTestWorkflow(fixedClock(testDate))
	require.NoError(t, wf.Convert(context.Background(), ConvertArgs{ScanRoot: m.Path(root), Output: m.Path(output)}))

	require.Len(t, ui.diagnostics, 2)
	assert.Equal(t, m.KindNoTransponder, ui.diagnostics[0].Kind)
	assert.Equal(t, m.KindSuboptimalRepresentation, ui.diagnostics[1].Kind)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[atsc/us-ATSC]\nA 57028615 8VSB\n")
	assert.NotContains(t, string(content), "de-Empty")
}

func TestWorkflow_Convert_FatalLeavesOutputUntouched(t *testing.T) {
	const previous = "previous content\n"

	tests := []struct {
		name      string
		prepare   func(t *testing.T, root string)
		fsAdapter adapter.SourceFSAdapter
		wantErr   error
	}{
		{
			name: "unparsable line",
			prepare: func(t *testing.T, root string) {
				writeScanFile(t, root, m.Cable, "de-Berlin", "C 113000000 6900000 NONE QAM999\n")
			},
			wantErr: ErrUnparsableLine,
		},
		{
			name: "missing technology directory",
			prepare: func(t *testing.T, root string) {
				require.NoError(t, os.Remove(filepath.Join(root, "atsc")))
			},
			wantErr: ErrMissingDirectory,
		},
		{
			name: "unreadable input file",
			prepare: func(t *testing.T, root string) {
				writeScanFile(t, root, m.Cable, "at-Vienna", "C 346000000 6900000 NONE QAM64\n")
				writeScanFile(t, root, m.Cable, "de-Berlin", "C 113000000 6900000 NONE QAM64\n")
			},
			fsAdapter: readFailingAdapter{LocalSourceFSAdapter: adapter.NewLocalSourceFSAdapter(), name: "de-Berlin"},
			wantErr:   ErrUnreadableFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newScanRoot(t)
			writeScanFile(t, root, m.Terrestrial, "uk-London", londonScan)
			tt.prepare(t, root)

			output := filepath.Join(t.TempDir(), "channels.dtv")
			require.NoError(t, os.WriteFile(output, []byte(previous), 0o644))

			fsAdapter := tt.fsAdapter
			if fsAdapter == nil {
				fsAdapter = adapter.NewLocalSourceFSAdapter()
			}

			wf, ui := newTestWorkflowWithFS(fsAdapter, fixedClock(testDate))
			err := wf.Convert(context.Background(), ConvertArgs{ScanRoot: m.Path(root), Output: m.Path(output)})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			content, readErr := os.ReadFile(output)
			require.NoError(t, readErr)
			assert.Equal(t, previous, string(content))
			assert.Empty(t, ui.summaries)
		})
	}
}

func TestWorkflow_Convert_UnwritableOutput(t *testing.T) {
	root := newScanRoot(t)
	output := filepath.Join(t.TempDir(), "missing", "channels.dtv")

	wf, _ := newTestWorkflow(fixedClock(testDate))
	err := wf.Convert(context.Background(), ConvertArgs{ScanRoot: m.Path(root), Output: m.Path(output)})
	assert.ErrorIs(t, err, ErrUnwritableOutput)
}

func TestWorkflow_Convert_Strict(t *testing.T) {
	root := newScanRoot(t)
	writeScanFile(t, root, m.ATSC, "us-ATSC", "A\t57028615\t8VSB\n")
	output := filepath.Join(t.TempDir(), "channels.dtv")

	wf, ui := newTestWorkflow(fixedClock(testDate))
	err := wf.Convert(context.Background(), ConvertArgs{ScanRoot: m.Path(root), Output: m.Path(output), Strict: true})
	require.ErrorIs(t, err, ErrWarningsAsErrors)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
	assert.Len(t, ui.diagnostics, 1)
}

func TestWorkflow_Convert_Report(t *testing.T) {
	root := newScanRoot(t)
	writeScanFile(t, root, m.Terrestrial, "uk-London", londonScan)
	writeScanFile(t, root, m.Cable, "de-Empty", "")
	dir := t.TempDir()
	output := filepath.Join(dir, "channels.dtv")
	reportPath := filepath.Join(dir, "report.yaml")

	wf, _ := newTestWorkflow(fixedClock(testDate))
	require.NoError(t, wf.Convert(context.Background(), ConvertArgs{
		ScanRoot: m.Path(root),
		Output:   m.Path(output),
		Report:   m.Path(reportPath),
	}))

	report, err := adapter.NewReportStore().LoadReport(context.Background(), m.Path(reportPath))
	require.NoError(t, err)
	assert.Equal(t, m.Path(root), report.ScanRoot)
	assert.Equal(t, m.Path(output), report.Output)
	assert.Equal(t, "2024-03-01", report.Date)
	assert.Equal(t, sha1Hex(londonDocument), report.Digest)
	require.Len(t, report.Groups, 1)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, m.KindNoTransponder, report.Diagnostics[0].Kind)
}

func TestWorkflow_Convert_LegacyChecksumVerifies(t *testing.T) {
	root := newScanRoot(t)
	writeScanFile(t, root, m.Terrestrial, "uk-London", londonScan)
	output := filepath.Join(t.TempDir(), "channels.dtv")

	wf, ui := newTestWorkflow(fixedClock(testDate))
	require.NoError(t, wf.Convert(context.Background(), ConvertArgs{
		ScanRoot:       m.Path(root),
		Output:         m.Path(output),
		LegacyChecksum: true,
	}))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(content), "# sha1sum "+sha1Hex(londonDocument+"# sha1sum ")+"\n"))

	require.NoError(t, wf.Verify(context.Background(), VerifyArgs{Paths: []m.Path{m.Path(output)}}))
	require.Len(t, ui.verification, 1)
	assert.True(t, ui.verification[0].Legacy)
}

func TestWorkflow_Verify(t *testing.T) {
	root := newScanRoot(t)
	writeScanFile(t, root, m.Terrestrial, "uk-London", londonScan)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.dtv")
	tampered := filepath.Join(dir, "tampered.dtv")
	missing := filepath.Join(dir, "missing.dtv")

	wf, ui := newTestWorkflow(fixedClock(testDate))
	require.NoError(t, wf.Convert(context.Background(), ConvertArgs{ScanRoot: m.Path(root), Output: m.Path(good)}))

	content, err := os.ReadFile(good)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tampered, []byte(strings.Replace(string(content), "QAM16", "QAM64", 1)), 0o644))

	t.Run("valid document", func(t *testing.T) {
		require.NoError(t, wf.Verify(context.Background(), VerifyArgs{Paths: []m.Path{m.Path(good)}, Threads: 2}))
	})

	t.Run("failures are collected", func(t *testing.T) {
		ui.verification = nil

		err := wf.Verify(context.Background(), VerifyArgs{
			Paths:   []m.Path{m.Path(good), m.Path(tampered), m.Path(missing)},
			Threads: 2,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrChecksumMismatch))
		assert.True(t, errors.Is(err, ErrUnreadableFile))

		require.Len(t, ui.verification, 3)
		assert.True(t, ui.verification[0].OK())
		assert.Equal(t, m.Path(tampered), ui.verification[1].Path)
		assert.False(t, ui.verification[1].OK())
		assert.False(t, ui.verification[2].OK())
	})

	t.Run("no paths", func(t *testing.T) {
		assert.ErrorIs(t, wf.Verify(context.Background(), VerifyArgs{}), ErrNoDocuments)
	})
}

func TestWorkflow_Diff(t *testing.T) {
	root := newScanRoot(t)
	writeScanFile(t, root, m.Terrestrial, "uk-London", londonScan)
	existing := filepath.Join(t.TempDir(), "channels.dtv")

	converter, _ := newTestWorkflow(fixedClock(testDate))
	require.NoError(t, converter.Convert(context.Background(), ConvertArgs{ScanRoot: m.Path(root), Output: m.Path(existing)}))

	wf, ui := newTestWorkflow(fixedClock(testDate.AddDate(0, 2, 0)))

	t.Run("up to date despite new date", func(t *testing.T) {
		require.NoError(t, wf.Diff(context.Background(), DiffArgs{ScanRoot: m.Path(root), Existing: m.Path(existing)}))
		require.Len(t, ui.diffs, 1)
		assert.Empty(t, ui.diffs[0])
	})

	t.Run("new transponder shows up", func(t *testing.T) {
		writeScanFile(t, root, m.Terrestrial, "uk-London", londonScan+"T 690000000 8MHz 2/3 NONE QAM64 8k 1/32 NONE\n")

		require.NoError(t, wf.Diff(context.Background(), DiffArgs{ScanRoot: m.Path(root), Existing: m.Path(existing)}))
		require.Len(t, ui.diffs, 2)
		assert.Contains(t, ui.diffs[1], "+T 690000000 8MHz 2/3 NONE QAM64 8k 1/32 NONE")

		content, err := os.ReadFile(existing)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "690000000")
	})

	t.Run("missing existing document", func(t *testing.T) {
		err := wf.Diff(context.Background(), DiffArgs{ScanRoot: m.Path(root), Existing: m.Path(existing + ".missing")})
		assert.ErrorIs(t, err, ErrUnreadableFile)
	})
}

func TestNewWorkflow_DefaultClock(t *testing.T) {
	wf := NewWorkflow(nil, nil, nil, nil, nil)
	require.NotNil(t, wf)
	assert.NotNil(t, wf.(*workflow).now)
}

func TestWorkflow_Convert_ReportFailureKeepsOutput(t *testing.T) {
	root := newScanRoot(t)
	writeScanFile(t, root, m.Terrestrial, "uk-London", londonScan)
	dir := t.TempDir()
	output := filepath.Join(dir, "channels.dtv")

	wf, ui := newTestWorkflow(fixedClock(testDate))
	err := wf.Convert(context.Background(), ConvertArgs{
		ScanRoot: m.Path(root),
		Output:   m.Path(output),
		Report:   m.Path(filepath.Join(dir, "missing", "report.yaml")),
	})
	require.NoError(t, err)

	content, readErr := os.ReadFile(output)
	require.NoError(t, readErr)
	assert.Equal(t, londonDocument+"# sha1sum "+sha1Hex(londonDocument)+"\n", string(content))

	require.Len(t, ui.diagnostics, 1)
	assert.Equal(t, m.KindReportNotSaved, ui.diagnostics[0].Kind)
	require.Len(t, ui.summaries, 1)
}
