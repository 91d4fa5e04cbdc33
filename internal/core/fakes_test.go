package core

import (
	"context"
	"sync"
	"time"

	"familysync-backend/internal/db"
	"familysync-backend/internal/models"
)

// Hand-written fakes for the repository and service interfaces. Behavior
// is injected per test through the function fields; unset fields mean the
// call is unexpected and will panic, which surfaces wiring mistakes fast.

type fakeFamilyRepo struct {
	getByID         func(ctx context.Context, familyID string) (*models.Family, error)
	createWithOwner func(ctx context.Context, family *models.Family, ownerUID string) (string, error)
	updateSettings  func(ctx context.Context, familyID string, settings *models.FamilySettings, supermarkets *[]string) error
}

func (f *fakeFamilyRepo) GetByID(ctx context.Context, familyID string) (*models.Family, error) {
	return f.getByID(ctx, familyID)
}
func (f *fakeFamilyRepo) CreateWithOwner(ctx context.Context, family *models.Family, ownerUID string) (string, error) {
	return f.createWithOwner(ctx, family, ownerUID)
}
func (f *fakeFamilyRepo) UpdateSettings(ctx context.Context, familyID string, settings *models.FamilySettings, supermarkets *[]string) error {
	return f.updateSettings(ctx, familyID, settings, supermarkets)
}

type fakeUserRepo struct {
	getByID          func(ctx context.Context, userID string) (*models.User, error)
	create           func(ctx context.Context, user *models.User) error
	update           func(ctx context.Context, user *models.User) error
	getFamilyMembers func(ctx context.Context, familyID string) ([]*models.User, error)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return f.getByID(ctx, userID)
}
func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	return f.create(ctx, user)
}
func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	return f.update(ctx, user)
}
func (f *fakeUserRepo) GetFamilyMembers(ctx context.Context, familyID string) ([]*models.User, error) {
	return f.getFamilyMembers(ctx, familyID)
}

type fakeTaskRepo struct {
	create   func(ctx context.Context, task *models.Task) (string, error)
	getByID  func(ctx context.Context, familyID, taskID string) (*models.Task, error)
	complete func(ctx context.Context, familyID, taskID, completedBy string) error
}

func (f *fakeTaskRepo) Create(ctx context.Context, task *models.Task) (string, error) {
	return f.create(ctx, task)
}
func (f *fakeTaskRepo) GetByID(ctx context.Context, familyID, taskID string) (*models.Task, error) {
	return f.getByID(ctx, familyID, taskID)
}
func (f *fakeTaskRepo) Complete(ctx context.Context, familyID, taskID, completedBy string) error {
	return f.complete(ctx, familyID, taskID, completedBy)
}

type fakeEventRepo struct {
	create       func(ctx context.Context, event *models.CalendarEvent) (string, error)
	getByID      func(ctx context.Context, familyID, eventID string) (*models.CalendarEvent, error)
	update       func(ctx context.Context, event *models.CalendarEvent) error
	listByFamily func(ctx context.Context, familyID string) ([]*models.CalendarEvent, error)
}

func (f *fakeEventRepo) Create(ctx context.Context, event *models.CalendarEvent) (string, error) {
	return f.create(ctx, event)
}
func (f *fakeEventRepo) GetByID(ctx context.Context, familyID, eventID string) (*models.CalendarEvent, error) {
	return f.getByID(ctx, familyID, eventID)
}
func (f *fakeEventRepo) Update(ctx context.Context, event *models.CalendarEvent) error {
	return f.update(ctx, event)
}
func (f *fakeEventRepo) ListByFamily(ctx context.Context, familyID string) ([]*models.CalendarEvent, error) {
	return f.listByFamily(ctx, familyID)
}

type fakeShoppingRepo struct {
	getList          func(ctx context.Context, familyID, listID string) (*models.ShoppingList, error)
	upsertItem       func(ctx context.Context, familyID, listID, itemID string, item models.ShoppingItem, updatedBy string) error
	setItemPurchased func(ctx context.Context, familyID, listID, itemID, purchasedBy string) (*models.ShoppingItem, error)
}

func (f *fakeShoppingRepo) GetList(ctx context.Context, familyID, listID string) (*models.ShoppingList, error) {
	return f.getList(ctx, familyID, listID)
}
func (f *fakeShoppingRepo) UpsertItem(ctx context.Context, familyID, listID, itemID string, item models.ShoppingItem, updatedBy string) error {
	return f.upsertItem(ctx, familyID, listID, itemID, item, updatedBy)
}
func (f *fakeShoppingRepo) SetItemPurchased(ctx context.Context, familyID, listID, itemID, purchasedBy string) (*models.ShoppingItem, error) {
	return f.setItemPurchased(ctx, familyID, listID, itemID, purchasedBy)
}

var _ db.ShoppingRepository = (*fakeShoppingRepo)(nil)

// stubMembership answers membership checks from a fixed map keyed by
// "uid/familyId".
type stubMembership struct {
	allowed     map[string]bool
	invalidated []string
}

func (s *stubMembership) IsMember(ctx context.Context, userID, familyID string) bool {
	return s.allowed[userID+"/"+familyID]
}
func (s *stubMembership) Invalidate(ctx context.Context, familyID string) {
	s.invalidated = append(s.invalidated, familyID)
}

func allowMember(uid, familyID string) *stubMembership {
	return &stubMembership{allowed: map[string]bool{uid + "/" + familyID: true}}
}

// recordingNotifier records every dispatch synchronously.
type recordingNotifier struct {
	mu             sync.Mutex
	tasks          []*models.Task
	events         []*models.CalendarEvent
	purchasedItems []models.ShoppingItem
}

func (r *recordingNotifier) TaskCreated(task *models.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, task)
}
func (r *recordingNotifier) CalendarEventUpdated(event *models.CalendarEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}
func (r *recordingNotifier) ShoppingItemPurchased(familyID, listID, itemID string, item models.ShoppingItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchasedItems = append(r.purchasedItems, item)
}

// fakeSender records push sends.
type fakeSender struct {
	mu    sync.Mutex
	sends []fakeSend
	fail  error
}

type fakeSend struct {
	tokens  []string
	payload models.PushNotification
}

func (f *fakeSender) Send(ctx context.Context, tokens []string, n models.PushNotification) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return len(tokens), f.fail
	}
	f.sends = append(f.sends, fakeSend{tokens: tokens, payload: n})
	return 0, nil
}

func (f *fakeSender) sent() []fakeSend {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]fakeSend, len(f.sends))
	copy(out, f.sends)
	return out
}

// memoryCache is an in-process cache.Cache for membership tests.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]string
	gets    int
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]string{}}
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	return m.entries[key], nil
}
func (m *memoryCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.entries[key] = value
	return nil
}
func (m *memoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
