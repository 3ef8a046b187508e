package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
	"github.com/phoneix12356/RenuHealthCare/internal/media"
	"github.com/phoneix12356/RenuHealthCare/internal/models"
	"github.com/phoneix12356/RenuHealthCare/internal/repository"
)

// fakeStore is an in-memory media.Store that can be told to fail
// specific file uploads by public-id substring or upload index.
type fakeStore struct {
	mu        sync.Mutex
	uploads   int
	deletes   []string
	held      map[string]bool
	failEvery func(n int) bool
	failDel   bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{held: map[string]bool{}}
}

func (s *fakeStore) Upload(ctx context.Context, content []byte, params media.UploadParams) (*media.StoredFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.uploads
	s.uploads++
	if s.failEvery != nil && s.failEvery(n) {
		return nil, errors.New("host rejected upload")
	}
	publicID := params.PublicID
	if publicID == "" {
		publicID = fmt.Sprintf("auto_%d", n)
	}
	publicID = params.Folder + "/" + publicID
	s.held[publicID] = true
	return &media.StoredFile{
		URL:      "https://media.test/" + publicID,
		PublicID: publicID,
	}, nil
}

func (s *fakeStore) Delete(ctx context.Context, publicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, publicID)
	if s.failDel {
		return errors.New("delete refused")
	}
	delete(s.held, publicID)
	return nil
}

func (s *fakeStore) heldCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.held)
}

// fakeRecords implements submissionRecords over a single in-memory
// record per user, mirroring the unique userId index.
type fakeRecords struct {
	recs    map[primitive.ObjectID]*models.Submission
	creates int
	appends int

	// appendMisses and findMisses force the first N calls to miss,
	// simulating a rival request racing the record into existence.
	appendMisses int
	findMisses   int
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{recs: map[primitive.ObjectID]*models.Submission{}}
}

func (r *fakeRecords) Create(ctx context.Context, sub *models.Submission) (string, error) {
	r.creates++
	if _, exists := r.recs[sub.UserID]; exists {
		return "", errors.New("E11000 duplicate key error")
	}
	sub.ID = primitive.NewObjectID()
	r.recs[sub.UserID] = sub
	return sub.ID.Hex(), nil
}

func (r *fakeRecords) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Submission, error) {
	if r.findMisses > 0 {
		r.findMisses--
		return nil, nil
	}
	return r.recs[userID], nil
}

func (r *fakeRecords) FindByID(ctx context.Context, id string) (*models.Submission, error) {
	for _, sub := range r.recs {
		if sub.ID.Hex() == id {
			return sub, nil
		}
	}
	return nil, nil
}

func (r *fakeRecords) FindByUserAndWeek(ctx context.Context, userID primitive.ObjectID, week int) ([]models.Submission, error) {
	sub := r.recs[userID]
	if sub == nil || !sub.HasWeek(week) {
		return []models.Submission{}, nil
	}
	return []models.Submission{*sub}, nil
}

func (r *fakeRecords) AppendWeek(ctx context.Context, userID primitive.ObjectID, delta repository.WeekAppend) (bool, error) {
	r.appends++
	if r.appendMisses > 0 {
		r.appendMisses--
		return false, nil
	}
	sub := r.recs[userID]
	if sub == nil || sub.HasWeek(delta.Week) {
		return false, nil
	}
	sub.CompletedWeek = append(sub.CompletedWeek, delta.Week)
	sub.Images = append(sub.Images, delta.Images...)
	sub.PDFs = append(sub.PDFs, delta.PDFs...)
	sub.Links = append(sub.Links, delta.Links...)
	sub.Notes = append(sub.Notes, delta.Notes...)
	return true, nil
}

func (r *fakeRecords) Delete(ctx context.Context, id string) error {
	for uid, sub := range r.recs {
		if sub.ID.Hex() == id {
			delete(r.recs, uid)
			return nil
		}
	}
	return errors.New("no such record")
}

func pngFile(name string) media.Descriptor {
	return media.Descriptor{Content: []byte("png-bytes-" + name), MediaType: media.TypePNG, FileName: name}
}

func pdfFile(name string) media.Descriptor {
	return media.Descriptor{Content: []byte("%PDF-" + name), MediaType: media.TypePDF, FileName: name}
}

func submitInput(userID primitive.ObjectID, week int, files ...media.Descriptor) SubmitInput {
	return SubmitInput{
		UserID:     userID,
		Username:   "Asha Verma",
		WeekNumber: week,
		Files:      files,
	}
}

func TestSubmitFirstWeekCreatesRecord(t *testing.T) {
	store := newFakeStore()
	recs := newFakeRecords()
	svc := NewSubmissionService(recs, store)
	userID := primitive.NewObjectID()

	in := submitInput(userID, 1, pngFile("a.png"), pngFile("b.png"), pdfFile("report.pdf"))
	in.Links = []string{"https://github.com/asha/week1"}
	in.Notes = []string{"finished onboarding"}

	sub, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got := sub.CompletedWeek; len(got) != 1 || got[0] != 1 {
		t.Errorf("CompletedWeek = %v, want [1]", got)
	}
	if len(sub.Images) != 2 || len(sub.PDFs) != 1 {
		t.Errorf("got %d images, %d pdfs, want 2 and 1", len(sub.Images), len(sub.PDFs))
	}
	if len(sub.Links) != 1 || len(sub.Notes) != 1 {
		t.Errorf("links/notes not recorded: %v %v", sub.Links, sub.Notes)
	}
	if store.heldCount() != 3 {
		t.Errorf("store holds %d files, want 3", store.heldCount())
	}
	for _, ref := range sub.Images {
		if !strings.Contains(ref.PublicID, "submissions/"+userID.Hex()+"/images") {
			t.Errorf("image stored outside user image folder: %s", ref.PublicID)
		}
	}
	for _, ref := range sub.PDFs {
		if !strings.Contains(ref.PublicID, "submissions/"+userID.Hex()+"/pdfs") {
			t.Errorf("pdf stored outside user pdf folder: %s", ref.PublicID)
		}
	}
}

func TestSubmitAppendsAcrossWeeksInOrder(t *testing.T) {
	store := newFakeStore()
	recs := newFakeRecords()
	svc := NewSubmissionService(recs, store)
	userID := primitive.NewObjectID()

	if _, err := svc.Submit(context.Background(), submitInput(userID, 1, pngFile("w1.png"))); err != nil {
		t.Fatalf("week 1: %v", err)
	}
	sub, err := svc.Submit(context.Background(), submitInput(userID, 2, pngFile("w2.png"), pdfFile("w2.pdf")))
	if err != nil {
		t.Fatalf("week 2: %v", err)
	}

	if got := sub.CompletedWeek; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("CompletedWeek = %v, want [1 2]", got)
	}
	if len(sub.Images) != 2 {
		t.Fatalf("got %d images, want 2", len(sub.Images))
	}
	// Week 1's image stays ahead of week 2's.
	if !strings.Contains(sub.Images[0].URL, "auto_0") {
		t.Errorf("append reordered earlier files: %v", sub.Images)
	}
}

func TestSubmitDuplicateWeekRollsBackUploads(t *testing.T) {
	store := newFakeStore()
	recs := newFakeRecords()
	svc := NewSubmissionService(recs, store)
	userID := primitive.NewObjectID()

	if _, err := svc.Submit(context.Background(), submitInput(userID, 3, pngFile("first.png"))); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	heldBefore := store.heldCount()

	_, err := svc.Submit(context.Background(), submitInput(userID, 3, pngFile("second.png")))
	if !apperr.Is(err, apperr.KindDuplicateSubmission) {
		t.Fatalf("err = %v, want duplicate submission", err)
	}
	if store.heldCount() != heldBefore {
		t.Errorf("store holds %d files after rejected duplicate, want %d", store.heldCount(), heldBefore)
	}
	sub := recs.recs[userID]
	if len(sub.CompletedWeek) != 1 || len(sub.Images) != 1 {
		t.Errorf("record mutated by rejected duplicate: %+v", sub)
	}
}

func TestSubmitUploadFailureCleansUpSuccesses(t *testing.T) {
	store := newFakeStore()
	store.failEvery = func(n int) bool { return n == 1 }
	recs := newFakeRecords()
	svc := NewSubmissionService(recs, store)
	userID := primitive.NewObjectID()

	_, err := svc.Submit(context.Background(), submitInput(userID, 1, pngFile("ok.png"), pngFile("bad.png"), pngFile("ok2.png")))
	if !apperr.Is(err, apperr.KindUpload) {
		t.Fatalf("err = %v, want upload error", err)
	}
	if store.heldCount() != 0 {
		t.Errorf("store holds %d orphaned files, want 0", store.heldCount())
	}
	if recs.recs[userID] != nil {
		t.Errorf("record created despite failed upload")
	}
}

func TestSubmitValidationFailureSkipsUploads(t *testing.T) {
	tests := []struct {
		name string
		in   SubmitInput
	}{
		{"zero user id", submitInput(primitive.NilObjectID, 1, pngFile("a.png"))},
		{"week zero", submitInput(primitive.NewObjectID(), 0, pngFile("a.png"))},
		{"no files", submitInput(primitive.NewObjectID(), 1)},
		{"too many files", submitInput(primitive.NewObjectID(), 1,
			pngFile("a.png"), pngFile("b.png"), pngFile("c.png"), pngFile("d.png"), pdfFile("e.pdf"))},
		{"disallowed type", submitInput(primitive.NewObjectID(), 1,
			media.Descriptor{Content: []byte("gif"), MediaType: "image/gif", FileName: "a.gif"})},
		{"oversized file", submitInput(primitive.NewObjectID(), 1,
			media.Descriptor{Content: make([]byte, MaxFileSize+1), MediaType: media.TypePNG, FileName: "big.png"})},
		{"two pdfs", submitInput(primitive.NewObjectID(), 1, pdfFile("a.pdf"), pdfFile("b.pdf"))},
		{"four images", submitInput(primitive.NewObjectID(), 1,
			pngFile("a.png"), pngFile("b.png"), pngFile("c.png"), pngFile("d.png"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			svc := NewSubmissionService(newFakeRecords(), store)
			_, err := svc.Submit(context.Background(), tt.in)
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if store.uploads != 0 {
				t.Errorf("%d uploads attempted on invalid input, want 0", store.uploads)
			}
		})
	}
}

func TestSubmitLostCreateRaceRetriesAppend(t *testing.T) {
	store := newFakeStore()
	recs := newFakeRecords()
	svc := NewSubmissionService(recs, store)
	userID := primitive.NewObjectID()

	// A rival request slips its record in between AppendWeek and Create.
	recs.recs[userID] = &models.Submission{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		CompletedWeek: []int{1},
	}
	recs.appendMisses = 1
	recs.findMisses = 1

	orig := isDuplicateKey
	isDuplicateKey = func(err error) bool {
		return err != nil && strings.Contains(err.Error(), "E11000")
	}
	defer func() { isDuplicateKey = orig }()

	sub, err := svc.Submit(context.Background(), submitInput(userID, 2, pngFile("w2.png")))
	if err != nil {
		t.Fatalf("Submit after lost race: %v", err)
	}
	if got := sub.CompletedWeek; len(got) != 2 || got[1] != 2 {
		t.Errorf("CompletedWeek = %v, want [1 2]", got)
	}
}

func TestSubmitLostRaceSameWeekIsDuplicate(t *testing.T) {
	store := newFakeStore()
	recs := newFakeRecords()
	svc := NewSubmissionService(recs, store)
	userID := primitive.NewObjectID()

	// The rival's record already holds this week, so the retry must
	// surface a duplicate, not append.
	recs.recs[userID] = &models.Submission{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		CompletedWeek: []int{1},
	}
	recs.appendMisses = 1
	recs.findMisses = 1

	orig := isDuplicateKey
	isDuplicateKey = func(err error) bool {
		return err != nil && strings.Contains(err.Error(), "E11000")
	}
	defer func() { isDuplicateKey = orig }()

	_, err := svc.Submit(context.Background(), submitInput(userID, 1, pngFile("w1.png")))
	if !apperr.Is(err, apperr.KindDuplicateSubmission) {
		t.Fatalf("err = %v, want duplicate submission", err)
	}
	if store.heldCount() != 0 {
		t.Errorf("store holds %d files after rejected race loser, want 0", store.heldCount())
	}
}

func TestDeleteRemovesRecordAndFiles(t *testing.T) {
	store := newFakeStore()
	recs := newFakeRecords()
	svc := NewSubmissionService(recs, store)
	userID := primitive.NewObjectID()

	sub, err := svc.Submit(context.Background(), submitInput(userID, 1, pngFile("a.png"), pdfFile("r.pdf")))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := svc.Delete(context.Background(), sub.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if store.heldCount() != 0 {
		t.Errorf("store holds %d files after delete, want 0", store.heldCount())
	}
	if recs.recs[userID] != nil {
		t.Errorf("record survived delete")
	}
}

func TestDeleteKeepsRecordWhenRemoteDeleteFails(t *testing.T) {
	store := newFakeStore()
	recs := newFakeRecords()
	svc := NewSubmissionService(recs, store)
	userID := primitive.NewObjectID()

	sub, err := svc.Submit(context.Background(), submitInput(userID, 1, pngFile("a.png")))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	store.failDel = true
	err = svc.Delete(context.Background(), sub.ID.Hex())
	if !apperr.Is(err, apperr.KindUpload) {
		t.Fatalf("err = %v, want upload error", err)
	}
	if recs.recs[userID] == nil {
		t.Errorf("record deleted while remote files remain")
	}
}

func TestDeleteUnknownSubmission(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionService(newFakeRecords(), store)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	if len(store.deletes) != 0 {
		t.Errorf("store deletes attempted for unknown submission: %v", store.deletes)
	}
}
