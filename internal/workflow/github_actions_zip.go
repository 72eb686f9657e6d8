package workflow

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const githubActionsZipFormat = "github_actions_zip"

var gaZipEntryRE = regexp.MustCompile(`^(\d+)_(.+)\.txt$`)

// GithubActionsZipParser wraps GithubActionsParser for the ZIP archives
// GitHub offers for "download log" on a workflow run: one entry per job,
// named "{N}_{job_name}.txt" at the archive root. Entries inside
// subdirectories are per-step metadata and are skipped.
type GithubActionsZipParser struct {
	parser.BaseWorkflowParser
	inner *GithubActionsParser
}

func NewGithubActionsZipParser(inner *GithubActionsParser) *GithubActionsZipParser {
	return &GithubActionsZipParser{
		BaseWorkflowParser: parser.BaseWorkflowParser{ToolName: githubActionsZipFormat},
		inner:              inner,
	}
}

func (z *GithubActionsZipParser) FormatName() string { return githubActionsZipFormat }
func (z *GithubActionsZipParser) Name() string       { return githubActionsZipFormat }
func (z *GithubActionsZipParser) Priority() int      { return parser.PriorityVeryHigh }

// CanParse only looks at a path-like hint, since ZIP content isn't
// meaningfully sniffable as text; the dispatcher is expected to route by
// the ".zip" path extension rather than by calling CanParse on content.
func (z *GithubActionsZipParser) CanParse(content string) bool {
	return strings.HasSuffix(strings.TrimSpace(content), ".zip")
}

// ParseWorkflowLogFromZip opens the archive at zipPath, parses every
// "{N}_{job_name}.txt" entry at the root with the plain GitHub Actions
// parser, and stamps every resulting event with job_order/job_name and a
// "log_file" key of "<zip_path>:<entry_name>" in its structured_data JSON
// (added alongside any keys the event already carries).
func (z *GithubActionsZipParser) ParseWorkflowLogFromZip(zipPath string) ([]parser.WorkflowEvent, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("github actions zip: open %s: %w", zipPath, err)
	}
	defer r.Close()

	type jobEntry struct {
		order int
		name  string
		file  *zip.File
	}
	var jobs []jobEntry
	for _, f := range r.File {
		if strings.Contains(f.Name, "/") {
			continue // subdirectory entries are per-step metadata
		}
		m := gaZipEntryRE.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		order, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		jobs = append(jobs, jobEntry{order: order, name: m[2], file: f})
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].order < jobs[j].order })

	var out []parser.WorkflowEvent
	for _, job := range jobs {
		rc, err := job.file.Open()
		if err != nil {
			return nil, fmt.Errorf("github actions zip: open entry %s: %w", job.file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("github actions zip: read entry %s: %w", job.file.Name, err)
		}

		evs, err := z.inner.ParseWorkflowLog(string(content))
		if err != nil {
			return nil, err
		}
		for _, we := range evs {
			we.Event.JobOrder = job.order
			we.Event.JobName = job.name
			we.JobOrder = job.order
			we.JobName = job.name
			we.Event.Scope = "workflow"
			logFile := fmt.Sprintf(`"log_file":%q`, zipPath+":"+job.file.Name)
			if sd := we.Event.StructuredData; strings.HasPrefix(sd, "{") && strings.HasSuffix(sd, "}") && sd != "{}" {
				we.Event.StructuredData = strings.TrimSuffix(sd, "}") + "," + logFile + "}"
			} else {
				we.Event.StructuredData = "{" + logFile + "}"
			}
			out = append(out, we)
		}
	}

	if len(out) == 0 {
		ev := z.CreateBaseEvent(events.EventTypeSummary)
		ev.Message = "no job entries recognized in github actions zip archive"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: githubActionsZipFormat})
	}
	return out, nil
}

// ParseWorkflowLog satisfies WorkflowParser for registry uniformity, but
// the ZIP format can't be parsed from a content string; callers must use
// ParseWorkflowLogFromZip with the archive path (the dispatcher's ZIP
// short-circuit does exactly this, per spec).
func (z *GithubActionsZipParser) ParseWorkflowLog(content string) ([]parser.WorkflowEvent, error) {
	return z.ParseWorkflowLogFromZip(content)
}

var _ parser.WorkflowParser = (*GithubActionsZipParser)(nil)
