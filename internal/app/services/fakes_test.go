package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/selim/lostfound/internal/app/models"
)

// In-memory store fakes backing the service tests. They reproduce the
// repository contracts: nil, nil for missing rows, lexical pickup ordering
// and substring matching for item search.

type fakeStudentStore struct {
	students  map[string]*models.Student
	createErr error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[string]*models.Student)}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *student
	f.students[student.StudentID] = &cp
	return nil
}

func (f *fakeStudentStore) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	student, ok := f.students[studentID]
	if !ok {
		return nil, nil
	}
	cp := *student
	return &cp, nil
}

func (f *fakeStudentStore) UpdatePasswordHash(_ context.Context, studentID, passwordHash string) error {
	student, ok := f.students[studentID]
	if !ok {
		return errors.New("student not found")
	}
	student.PasswordHash = passwordHash
	return nil
}

type fakeAdministratorStore struct {
	admins map[int64]*models.Administrator
}

func newFakeAdministratorStore() *fakeAdministratorStore {
	return &fakeAdministratorStore{admins: make(map[int64]*models.Administrator)}
}

func (f *fakeAdministratorStore) GetByEmail(_ context.Context, email string) (*models.Administrator, error) {
	for _, admin := range f.admins {
		if admin.Email == email {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAdministratorStore) GetByID(_ context.Context, id int64) (*models.Administrator, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, nil
	}
	cp := *admin
	return &cp, nil
}

type fakeItemStore struct {
	items     map[int64]*models.LostItem
	claims    *fakeClaimStore
	nextID    int64
	createErr error
	deleteErr error
}

func newFakeItemStore(claims *fakeClaimStore) *fakeItemStore {
	return &fakeItemStore{items: make(map[int64]*models.LostItem), claims: claims, nextID: 1}
}

func (f *fakeItemStore) Search(_ context.Context, keyword string, offset uint64, limit int) ([]models.LostItem, int64, error) {
	var matched []models.LostItem
	for _, item := range f.items {
		if keyword == "" || strings.Contains(item.Name, keyword) {
			matched = append(matched, *item)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PickupTime > matched[j].PickupTime
	})

	total := int64(len(matched))
	if offset >= uint64(len(matched)) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (f *fakeItemStore) GetByID(_ context.Context, id int64) (*models.LostItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeItemStore) Create(_ context.Context, item *models.LostItem) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	cp := *item
	cp.ID = id
	f.items[id] = &cp
	return id, nil
}

func (f *fakeItemStore) DeleteWithClaims(_ context.Context, id int64) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	if _, ok := f.items[id]; !ok {
		return 0, errors.New("item not found")
	}
	delete(f.items, id)

	var removed int64
	if f.claims != nil {
		for cid, claim := range f.claims.claims {
			if claim.ItemID == id {
				delete(f.claims.claims, cid)
				removed++
			}
		}
	}
	return removed, nil
}

func (f *fakeItemStore) add(item models.LostItem) int64 {
	id, _ := f.Create(context.Background(), &item)
	return id
}

type fakeClaimStore struct {
	claims    map[int64]*models.Claim
	nextID    int64
	createErr error
	updateErr error
}

func newFakeClaimStore() *fakeClaimStore {
	return &fakeClaimStore{claims: make(map[int64]*models.Claim), nextID: 1}
}

func (f *fakeClaimStore) Create(_ context.Context, claim *models.Claim) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	cp := *claim
	cp.ID = id
	cp.ClaimTime = time.Now()
	f.claims[id] = &cp
	return id, nil
}

func (f *fakeClaimStore) GetByID(_ context.Context, id int64) (*models.Claim, error) {
	claim, ok := f.claims[id]
	if !ok {
		return nil, nil
	}
	cp := *claim
	return &cp, nil
}

func (f *fakeClaimStore) FirstByItemID(_ context.Context, itemID int64) (*models.Claim, error) {
	var first *models.Claim
	for _, claim := range f.claims {
		if claim.ItemID != itemID {
			continue
		}
		if first == nil || claim.ID < first.ID {
			first = claim
		}
	}
	if first == nil {
		return nil, nil
	}
	cp := *first
	return &cp, nil
}

func (f *fakeClaimStore) UpdateStatus(_ context.Context, id int64, status models.ReviewStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	claim, ok := f.claims[id]
	if !ok {
		return errors.New("claim not found")
	}
	claim.Status = status
	return nil
}

func (f *fakeClaimStore) ListAll(_ context.Context) ([]models.ClaimSummary, error) {
	var summaries []models.ClaimSummary
	for _, claim := range f.claims {
		summaries = append(summaries, models.ClaimSummary{
			ID:          claim.ID,
			ItemID:      claim.ItemID,
			StudentID:   claim.StudentID,
			StudentName: claim.StudentName,
			Status:      claim.Status,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID > summaries[j].ID
	})
	return summaries, nil
}

type fakeBlobStore struct {
	saved      []string
	deleted    []string
	saveErr    error
	deleteErr  error
	saveCalls  int
	nextBlobID int
}

func (f *fakeBlobStore) Save(_ *multipart.FileHeader) (string, error) {
	f.saveCalls++
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.nextBlobID++
	ref := fmt.Sprintf("uploads/blob-%d.jpg", f.nextBlobID)
	f.saved = append(f.saved, ref)
	return ref, nil
}

func (f *fakeBlobStore) Delete(ref string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, ref)
	return nil
}
