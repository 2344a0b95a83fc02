package leadimport

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/baechuer/leads-api/internal/domain"
	zlog "github.com/rs/zerolog/log"
)

const (
	msgEmailRequired = "Email is required"
	msgLeadExists    = "Lead already exists"
)

// Importer turns CSV uploads into leads. Each row is handled on its own:
// a failing row is reported and the next one is processed.
type Importer struct {
	store   LeadStore
	archive Archiver
	events  EventPublisher
	now     func() time.Time
}

// New builds an importer. archive and events are optional.
func New(store LeadStore, archive Archiver, events EventPublisher) *Importer {
	return &Importer{
		store:   store,
		archive: archive,
		events:  events,
		now:     time.Now,
	}
}

type Upload struct {
	Filename  string
	UserEmail string
	Content   []byte
}

type RowError struct {
	Row   int
	Email string // empty when the row had no usable email
	Error string
}

type Result struct {
	Success   bool
	Processed int
	Created   int
	Errors    []RowError
}

// Import parses and stores the upload. File-level problems (encoding, too
// few rows) are returned as errors; row-level problems end up in Result.Errors.
func (im *Importer) Import(ctx context.Context, up Upload) (Result, error) {
	rows, err := Parse(up.Content)
	if err != nil {
		return Result{}, err
	}

	res := Result{Success: true}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if rowErr := im.importRow(ctx, row); rowErr != nil {
			res.Errors = append(res.Errors, *rowErr)
			continue
		}
		res.Processed++
		res.Created++
	}

	importedAt := im.now().UTC()
	im.archiveUpload(ctx, up, importedAt)
	im.publish(ctx, up, res, importedAt)

	return res, nil
}

func (im *Importer) importRow(ctx context.Context, row Row) *RowError {
	raw := row.Values["email"]
	if raw == "" {
		return &RowError{Row: row.Number, Error: msgEmailRequired}
	}
	email := domain.NormalizeEmail(raw)

	exists, err := im.store.ExistsByEmail(ctx, email)
	if err != nil {
		return &RowError{Row: row.Number, Error: errorMessage(err)}
	}
	if exists {
		return &RowError{Row: row.Number, Email: email, Error: msgLeadExists}
	}

	rawStatus := row.Values["status"]
	status, err := domain.ParseLeadStatus(rawStatus)
	if err != nil {
		return &RowError{Row: row.Number, Email: email, Error: "Invalid status: " + rawStatus}
	}

	l := domain.Lead{
		Email:     email,
		Status:    status,
		FirstName: row.first("firstname", "first_name"),
		LastName:  row.first("lastname", "last_name"),
		Company:   row.Values["company"],
		Title:     row.Values["title"],
		Phone:     row.Values["phone"],
		LinkedIn:  row.Values["linkedin"],
		Website:   row.Values["website"],
		City:      row.Values["city"],
		State:     row.Values["state"],
		Country:   row.Values["country"],
	}
	if assignee := row.first("assignedto", "assigned_to"); assignee != "" {
		l.AssignedTo = &assignee
	}

	if _, err := im.store.Create(ctx, l); err != nil {
		return &RowError{Row: row.Number, Error: errorMessage(err)}
	}
	return nil
}

func (im *Importer) archiveUpload(ctx context.Context, up Upload, at time.Time) {
	if im.archive == nil {
		return
	}
	key := archiveKey(up.Filename, at)
	if err := im.archive.Archive(ctx, key, up.Content, "text/csv"); err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("upload archive failed")
	}
}

func (im *Importer) publish(ctx context.Context, up Upload, res Result, at time.Time) {
	if im.events == nil {
		return
	}
	ev := ImportedEvent{
		Processed:  res.Processed,
		Created:    res.Created,
		Failed:     len(res.Errors),
		Filename:   up.Filename,
		UserEmail:  up.UserEmail,
		ImportedAt: at,
	}
	if err := im.events.PublishLeadsImported(ctx, ev); err != nil {
		zlog.Warn().Err(err).Str("filename", up.Filename).Msg("leads.imported publish failed")
	}
}

// archiveKey yields imports/<yyyy>/<mm>/<timestamp>-<basename>.
func archiveKey(filename string, at time.Time) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload.csv"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("imports/%s/%s-%s", at.Format("2006/01"), at.Format("20060102T150405Z"), base)
}

func errorMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
