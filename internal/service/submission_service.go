package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
	"github.com/phoneix12356/RenuHealthCare/internal/media"
	"github.com/phoneix12356/RenuHealthCare/internal/models"
	"github.com/phoneix12356/RenuHealthCare/internal/repository"
)

// Per-submission file constraints.
const (
	MaxFileSize   = 3 << 20 // 3 MiB per file
	MaxFiles      = 4
	MaxPDFsPerSub = 1
	MaxImagesPer  = 3
)

// submissionRecords is the persistence surface the consolidator needs.
// *repository.SubmissionRepo satisfies it; tests substitute a fake.
type submissionRecords interface {
	Create(ctx context.Context, sub *models.Submission) (string, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Submission, error)
	FindByID(ctx context.Context, id string) (*models.Submission, error)
	FindByUserAndWeek(ctx context.Context, userID primitive.ObjectID, week int) ([]models.Submission, error)
	AppendWeek(ctx context.Context, userID primitive.ObjectID, delta repository.WeekAppend) (bool, error)
	Delete(ctx context.Context, id string) error
}

// isDuplicateKey is swappable in tests.
var isDuplicateKey = repository.IsDuplicateKey

type SubmissionService struct {
	subs  submissionRecords
	store media.Store
}

func NewSubmissionService(subs submissionRecords, store media.Store) *SubmissionService {
	return &SubmissionService{subs: subs, store: store}
}

// SubmitInput is one week's decoded submission payload.
type SubmitInput struct {
	UserID       primitive.ObjectID
	Username     string
	DepartmentID primitive.ObjectID
	WeekNumber   int
	Notes        []string
	Links        []string
	Files        []media.Descriptor
}

// Submit validates the input, uploads the files, and merges the result
// into the user's submission record. Within one call: uploads happen
// before the duplicate-week check, which happens before the record
// mutation; compensating deletes always happen before an error is
// surfaced. A week number can be accepted at most once per user.
func (s *SubmissionService) Submit(ctx context.Context, in SubmitInput) (*models.Submission, error) {
	if err := validateSubmitInput(in); err != nil {
		return nil, err
	}

	uploaded, err := s.uploadAll(ctx, in)
	if err != nil {
		return nil, err
	}

	delta := repository.WeekAppend{
		Week:  in.WeekNumber,
		Links: in.Links,
		Notes: in.Notes,
	}
	for _, u := range uploaded {
		ref := models.FileRef{URL: u.file.URL, PublicID: u.file.PublicID}
		if u.kind == media.KindPDF {
			delta.PDFs = append(delta.PDFs, ref)
		} else {
			delta.Images = append(delta.Images, ref)
		}
	}

	if err := s.merge(ctx, in, delta); err != nil {
		s.cleanup(ctx, uploaded)
		return nil, err
	}

	return s.subs.FindByUser(ctx, in.UserID)
}

// merge appends the delta to the existing record, or seeds a new record
// on a user's first submission. The conditional update makes the
// duplicate-week check and the mutation one atomic step.
func (s *SubmissionService) merge(ctx context.Context, in SubmitInput, delta repository.WeekAppend) error {
	matched, err := s.subs.AppendWeek(ctx, in.UserID, delta)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "update submission record", err)
	}
	if matched {
		return nil
	}

	existing, err := s.subs.FindByUser(ctx, in.UserID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "load submission record", err)
	}
	if existing != nil {
		return apperr.New(apperr.KindDuplicateSubmission, "Submission for this week already exists.")
	}

	sub := &models.Submission{
		UserID:        in.UserID,
		Username:      in.Username,
		DepartmentID:  in.DepartmentID,
		CompletedWeek: []int{delta.Week},
		Images:        append([]models.FileRef{}, delta.Images...),
		PDFs:          append([]models.FileRef{}, delta.PDFs...),
		Links:         append([]string{}, delta.Links...),
		Notes:         append([]string{}, delta.Notes...),
	}
	if _, err := s.subs.Create(ctx, sub); err != nil {
		if !isDuplicateKey(err) {
			return apperr.Wrap(apperr.KindInternal, "create submission record", err)
		}
		// Lost a first-submission race; the record exists now, so append.
		matched, err := s.subs.AppendWeek(ctx, in.UserID, delta)
		if err != nil {
			return apperr.Wrap(apperr.KindInternal, "update submission record", err)
		}
		if !matched {
			return apperr.New(apperr.KindDuplicateSubmission, "Submission for this week already exists.")
		}
	}
	return nil
}

type uploadedFile struct {
	file *media.StoredFile
	kind media.Kind
}

// uploadAll fans the descriptors out to the media store concurrently.
// If any upload fails, every upload that did succeed is deleted before
// the error is returned — the store never holds files no record points
// at.
func (s *SubmissionService) uploadAll(ctx context.Context, in SubmitInput) ([]uploadedFile, error) {
	results := make([]uploadedFile, len(in.Files))

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range in.Files {
		i, d := i, d
		g.Go(func() error {
			file, err := s.store.Upload(gctx, d.Content, s.uploadParams(in.UserID, d))
			if err != nil {
				return apperr.Wrap(apperr.KindUpload, fmt.Sprintf("Failed to upload file: %s", d.FileName), err)
			}
			results[i] = uploadedFile{file: file, kind: d.Kind()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.cleanup(ctx, results)
		return nil, err
	}
	return results, nil
}

func (s *SubmissionService) uploadParams(userID primitive.ObjectID, d media.Descriptor) media.UploadParams {
	if d.Kind() == media.KindPDF {
		base := strings.TrimSuffix(d.FileName, filepath.Ext(d.FileName))
		return media.UploadParams{
			Folder:   fmt.Sprintf("submissions/%s/pdfs", userID.Hex()),
			PublicID: fmt.Sprintf("%d_%s", time.Now().UnixMilli(), base),
		}
	}
	return media.UploadParams{
		Folder: fmt.Sprintf("submissions/%s/images", userID.Hex()),
	}
}

// cleanup issues best-effort compensating deletes for already-uploaded
// files. It runs even when the request context is gone so a cancelled
// call cannot orphan remote objects.
func (s *SubmissionService) cleanup(ctx context.Context, uploaded []uploadedFile) {
	ctx = context.WithoutCancel(ctx)
	for _, u := range uploaded {
		if u.file == nil {
			continue
		}
		if err := s.store.Delete(ctx, u.file.PublicID); err != nil {
			log.Printf("Warning: compensating delete of %s failed: %v", u.file.PublicID, err)
		}
	}
}

func validateSubmitInput(in SubmitInput) error {
	if in.UserID.IsZero() {
		return apperr.Validation("User ID and Week Number are required.")
	}
	if in.WeekNumber < 1 {
		return apperr.Validation("Week Number must be a positive number.")
	}
	if len(in.Files) == 0 {
		return apperr.Validation("No valid file types provided. Only PNG, JPEG, and PDF are allowed.")
	}
	if len(in.Files) > MaxFiles {
		return apperr.Validation(fmt.Sprintf("Too many files uploaded. Maximum is %d files (%d PDF and %d images).", MaxFiles, MaxPDFsPerSub, MaxImagesPer))
	}

	var pdfs, images int
	for _, d := range in.Files {
		kind, ok := media.KindOf(d.MediaType)
		if !ok {
			return apperr.Validation(fmt.Sprintf("File type %s is not allowed. Only PNG, JPEG, and PDF are accepted.", d.MediaType))
		}
		if len(d.Content) > MaxFileSize {
			return apperr.Validation(fmt.Sprintf("File %s exceeds the 3MB limit.", d.FileName))
		}
		switch kind {
		case media.KindPDF:
			pdfs++
		case media.KindImage:
			images++
		}
	}
	if pdfs > MaxPDFsPerSub {
		return apperr.Validation(fmt.Sprintf("At most %d PDF per submission.", MaxPDFsPerSub))
	}
	if images > MaxImagesPer {
		return apperr.Validation(fmt.Sprintf("At most %d images per submission.", MaxImagesPer))
	}
	return nil
}

// GetByUser returns the user's record, or nil when none exists (not an
// error).
func (s *SubmissionService) GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Submission, error) {
	return s.subs.FindByUser(ctx, userID)
}

// GetByWeek returns the user's submissions containing week; empty when
// nothing matches.
func (s *SubmissionService) GetByWeek(ctx context.Context, userID primitive.ObjectID, week int) ([]models.Submission, error) {
	return s.subs.FindByUserAndWeek(ctx, userID, week)
}

// Delete removes a submission and every remote file it references. All
// remote deletes are attempted; failures are collected, and the record
// itself is only removed once the store holds none of its files.
func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	sub, err := s.subs.FindByID(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "load submission record", err)
	}
	if sub == nil {
		return apperr.NotFound("Submission")
	}

	var failed []error
	for _, ref := range sub.AllFiles() {
		if err := s.store.Delete(ctx, ref.PublicID); err != nil {
			failed = append(failed, fmt.Errorf("delete %s: %w", ref.PublicID, err))
		}
	}
	if len(failed) > 0 {
		return apperr.Wrap(apperr.KindUpload, "remote file cleanup incomplete", errors.Join(failed...))
	}

	if err := s.subs.Delete(ctx, id); err != nil {
		return apperr.Wrap(apperr.KindInternal, "delete submission record", err)
	}
	return nil
}
