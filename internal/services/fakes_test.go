package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the ordering and conditional-write
// behavior of the gorm implementations so the services can be tested without
// a database.

var fixtureEpoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*models.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (r *fakeUserRepo) nextTime() time.Time {
	r.seq++
	return fixtureEpoch.Add(time.Duration(r.seq) * time.Second)
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := r.nextTime()
	user.CreatedAt = now
	user.UpdatedAt = now

	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == user.ID {
			u.Name = user.Name
			u.Location = user.Location
			u.ProfilePhoto = user.ProfilePhoto
			u.SkillsOffered = user.SkillsOffered
			u.SkillsWanted = user.SkillsWanted
			u.Availability = user.Availability
			u.IsPublic = user.IsPublic
			u.UpdatedAt = r.nextTime()
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == userID {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) SetBanned(_ context.Context, userID string, banned bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == userID {
			u.IsBanned = banned
			u.UpdatedAt = r.nextTime()
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

// incrementTotalSwaps mimics the counter bump the gorm Complete transaction
// performs.
func (r *fakeUserRepo) incrementTotalSwaps(ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.nextTime()
	for _, id := range ids {
		for _, u := range r.users {
			if u.ID == id {
				u.TotalSwaps++
				u.UpdatedAt = now
			}
		}
	}
}

type fakeSwapRepo struct {
	mu       sync.Mutex
	requests []*models.SwapRequest
	users    *fakeUserRepo
	seq      int
}

func newFakeSwapRepo(users *fakeUserRepo) *fakeSwapRepo {
	return &fakeSwapRepo{users: users}
}

func (r *fakeSwapRepo) nextTime() time.Time {
	r.seq++
	return fixtureEpoch.Add(time.Hour + time.Duration(r.seq)*time.Second)
}

func (r *fakeSwapRepo) find(id string) *models.SwapRequest {
	for _, req := range r.requests {
		if req.ID == id {
			return req
		}
	}
	return nil
}

func (r *fakeSwapRepo) preload(req *models.SwapRequest) *models.SwapRequest {
	copied := *req
	if from, err := r.users.FindByID(context.Background(), req.FromUserID); err == nil {
		copied.FromUser = from
	}
	if to, err := r.users.FindByID(context.Background(), req.ToUserID); err == nil {
		copied.ToUser = to
	}
	return &copied
}

func (r *fakeSwapRepo) GetByID(_ context.Context, id string) (*models.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req := r.find(id)
	if req == nil {
		return nil, repositories.ErrSwapRequestNotFound
	}
	return r.preload(req), nil
}

func (r *fakeSwapRepo) Create(_ context.Context, request *models.SwapRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	now := r.nextTime()
	request.CreatedAt = now
	request.UpdatedAt = now

	copied := *request
	r.requests = append(r.requests, &copied)
	return nil
}

func (r *fakeSwapRepo) ListByUser(_ context.Context, userID string) ([]models.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SwapRequest
	for _, req := range r.requests {
		if req.FromUserID == userID || req.ToUserID == userID {
			out = append(out, *r.preload(req))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeSwapRepo) ListAll(_ context.Context) ([]models.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.SwapRequest, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, *r.preload(req))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeSwapRepo) UpdateStatus(_ context.Context, id string, from, to models.SwapRequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req := r.find(id)
	if req == nil {
		return repositories.ErrSwapRequestNotFound
	}
	if req.Status != from {
		return repositories.ErrStatusConflict
	}
	req.Status = to
	req.UpdatedAt = r.nextTime()
	return nil
}

func (r *fakeSwapRepo) Complete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req := r.find(id)
	if req == nil {
		return repositories.ErrSwapRequestNotFound
	}
	if req.Status != models.SwapStatusAccepted {
		return repositories.ErrStatusConflict
	}
	req.Status = models.SwapStatusCompleted
	req.UpdatedAt = r.nextTime()
	r.users.incrementTotalSwaps(req.FromUserID, req.ToUserID)
	return nil
}

func (r *fakeSwapRepo) DeletePending(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, req := range r.requests {
		if req.ID == id {
			if req.Status != models.SwapStatusPending {
				return repositories.ErrStatusConflict
			}
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return nil
		}
	}
	return repositories.ErrSwapRequestNotFound
}

func (r *fakeSwapRepo) CountAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.requests)), nil
}

func (r *fakeSwapRepo) CountByStatus(_ context.Context, status models.SwapRequestStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, req := range r.requests {
		if req.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID string, limit int) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].UserID != userID {
			continue
		}
		out = append(out, *r.notifications[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			now := time.Now()
			n.IsRead = true
			n.ReadAt = &now
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			n.ReadAt = &now
		}
	}
	return nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) forUser(userID string) []*models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*models.AdminMessage
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(_ context.Context, message *models.AdminMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) List(_ context.Context) ([]models.AdminMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.AdminMessage, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		out = append(out, *r.messages[i])
	}
	return out, nil
}

func (r *fakeMessageRepo) ListActive(_ context.Context) ([]models.AdminMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AdminMessage
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].IsActive {
			out = append(out, *r.messages[i])
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.messages {
		if m.ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return repositories.ErrAdminMessageNotFound
}

func (r *fakeMessageRepo) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.ID == id {
			m.IsActive = active
			return nil
		}
	}
	return repositories.ErrAdminMessageNotFound
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens []*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{}
}

func (r *fakeTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	copied := *token
	r.tokens = append(r.tokens, &copied)
	return nil
}

func (r *fakeTokenRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.Token == token {
			copied := *t
			return &copied, nil
		}
	}
	return nil, repositories.ErrRefreshTokenNotFound
}

func (r *fakeTokenRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tokens {
		if t.Token == token {
			r.tokens = append(r.tokens[:i], r.tokens[i+1:]...)
			return nil
		}
	}
	return repositories.ErrRefreshTokenNotFound
}

func (r *fakeTokenRepo) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.tokens[:0]
	for _, t := range r.tokens {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	r.tokens = kept
	return nil
}

func (r *fakeTokenRepo) CleanExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var removed int64
	kept := r.tokens[:0]
	for _, t := range r.tokens {
		if t.ExpiresAt.Before(now) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	r.tokens = kept
	return removed, nil
}

func (r *fakeTokenRepo) countForUser(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int
	for _, t := range r.tokens {
		if t.UserID == userID {
			count++
		}
	}
	return count
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{}
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) sentTo(addr string) []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sentMail
	for _, s := range m.sent {
		if s.To == addr {
			out = append(out, s)
		}
	}
	return out
}
