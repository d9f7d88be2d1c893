package services

import (
	"fmt"
	"sync"
	"time"

	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes. The db argument is ignored; state lives in the
// fake itself. fakeTxRunner serializes "transactions" with a mutex so the
// fresh-rescan behavior can be exercised concurrently without postgres.

type fakeTxRunner struct {
	mu sync.Mutex
}

func (f *fakeTxRunner) WithinTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(nil)
}

type fakeCaregiverRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.CaregiverProfile

	lastCriteria  repositories.CaregiverSearchCriteria
	searchResults []models.CaregiverProfile
}

func newFakeCaregiverRepo() *fakeCaregiverRepo {
	return &fakeCaregiverRepo{profiles: make(map[string]*models.CaregiverProfile)}
}

func (f *fakeCaregiverRepo) put(p *models.CaregiverProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[p.ID] = p
}

func (f *fakeCaregiverRepo) get(id string) *models.CaregiverProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := *f.profiles[id]
	return &p
}

func (f *fakeCaregiverRepo) CreateProfile(_ *gorm.DB, p *models.CaregiverProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == "" {
		p.ID = fmt.Sprintf("profile-%d", len(f.profiles)+1)
	}
	p.CreatedAt = time.Now()
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeCaregiverRepo) FindProfileByID(_ *gorm.DB, id string) (*models.CaregiverProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return nil, repositories.ErrCaregiverNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeCaregiverRepo) FindProfileByUserID(_ *gorm.DB, userID string) (*models.CaregiverProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrCaregiverNotFound
}

func (f *fakeCaregiverRepo) FindProfileByIDForUpdate(db *gorm.DB, id string) (*models.CaregiverProfile, error) {
	return f.FindProfileByID(db, id)
}

func (f *fakeCaregiverRepo) FindProfileByUserIDForUpdate(db *gorm.DB, userID string) (*models.CaregiverProfile, error) {
	return f.FindProfileByUserID(db, userID)
}

func (f *fakeCaregiverRepo) UpdateProfileFields(_ *gorm.DB, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return repositories.ErrCaregiverNotFound
	}
	for k, v := range fields {
		switch k {
		case "rating":
			p.Rating = v.(float64)
		case "total_reviews":
			switch n := v.(type) {
			case int64:
				p.TotalReviews = int(n)
			case int:
				p.TotalReviews = n
			}
		case "subscription_status":
			p.SubscriptionStatus = v.(models.SubscriptionStatus)
		case "subscription_expiry":
			t := v.(time.Time)
			p.SubscriptionExpiry = &t
		case "bio":
			p.Bio = v.(string)
		case "hourly_rate":
			p.HourlyRate = v.(float64)
		case "location":
			p.Location = v.(string)
		case "county":
			p.County = v.(string)
		}
	}
	return nil
}

func (f *fakeCaregiverRepo) SearchCaregivers(_ *gorm.DB, criteria repositories.CaregiverSearchCriteria) ([]models.CaregiverProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCriteria = criteria
	return f.searchResults, nil
}

func (f *fakeCaregiverRepo) FindPendingVerification(_ *gorm.DB) ([]models.CaregiverProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.CaregiverProfile
	for _, p := range f.profiles {
		if p.VerificationStatus == models.VerificationStatusPending {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeCaregiverRepo) SetVerificationStatus(_ *gorm.DB, id string, status models.VerificationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return repositories.ErrCaregiverNotFound
	}
	p.VerificationStatus = status
	return nil
}

func (f *fakeCaregiverRepo) CountPendingVerification(_ *gorm.DB) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.profiles {
		if p.VerificationStatus == models.VerificationStatusPending {
			n++
		}
	}
	return n, nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (f *fakeReviewRepo) CreateReview(_ *gorm.DB, r *models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = fmt.Sprintf("review-%d", len(f.reviews)+1)
	r.CreatedAt = time.Now()
	f.reviews = append(f.reviews, *r)
	return nil
}

func (f *fakeReviewRepo) AggregateVerified(_ *gorm.DB, caregiverID string) (repositories.RatingAggregate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum, count int64
	for _, r := range f.reviews {
		if r.CaregiverID == caregiverID && r.IsVerified {
			sum += int64(r.Rating)
			count++
		}
	}
	agg := repositories.RatingAggregate{Count: count}
	if count > 0 {
		agg.Average = float64(sum) / float64(count)
	}
	return agg, nil
}

func (f *fakeReviewRepo) FindVerifiedByCaregiver(_ *gorm.DB, caregiverID string, limit, offset int) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.Review
	for _, r := range f.reviews {
		if r.CaregiverID == caregiverID && r.IsVerified {
			all = append(all, r)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeReviewRepo) CountVerifiedByCaregiver(_ *gorm.DB, caregiverID string) (int64, error) {
	agg, _ := f.AggregateVerified(nil, caregiverID)
	return agg.Count, nil
}

func (f *fakeReviewRepo) FindRecentReviews(_ *gorm.DB, limit int) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.reviews) {
		limit = len(f.reviews)
	}
	out := make([]models.Review, limit)
	copy(out, f.reviews[len(f.reviews)-limit:])
	return out, nil
}

func (f *fakeReviewRepo) CountAllReviews(_ *gorm.DB) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.reviews)), nil
}

type fakeSubscriptionRepo struct {
	mu            sync.Mutex
	subscriptions []models.Subscription
	payments      []models.Payment
}

func (f *fakeSubscriptionRepo) CreateSubscription(_ *gorm.DB, s *models.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.subscriptions {
		if existing.TransactionID == s.TransactionID {
			return gorm.ErrDuplicatedKey
		}
	}
	s.ID = fmt.Sprintf("sub-%d", len(f.subscriptions)+1)
	s.CreatedAt = time.Now()
	f.subscriptions = append(f.subscriptions, *s)
	return nil
}

func (f *fakeSubscriptionRepo) FindCurrentActiveByUser(_ *gorm.DB, userID string, now time.Time) (*models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best *models.Subscription
	for i := range f.subscriptions {
		s := &f.subscriptions[i]
		if s.UserID == userID && s.Status == models.SubscriptionStatusActive && !s.EndDate.Before(now) {
			if best == nil || s.EndDate.After(best.EndDate) {
				best = s
			}
		}
	}
	if best == nil {
		return nil, repositories.ErrSubscriptionNotFound
	}
	cp := *best
	return &cp, nil
}

func (f *fakeSubscriptionRepo) FindSubscriptionsByUser(_ *gorm.DB, userID string) ([]models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Subscription
	for _, s := range f.subscriptions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) FindRecentSubscriptions(_ *gorm.DB, limit int) ([]models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.subscriptions) {
		limit = len(f.subscriptions)
	}
	out := make([]models.Subscription, limit)
	copy(out, f.subscriptions[len(f.subscriptions)-limit:])
	return out, nil
}

func (f *fakeSubscriptionRepo) ExpireDue(_ *gorm.DB, now time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[string]bool)
	var userIDs []string
	for i := range f.subscriptions {
		s := &f.subscriptions[i]
		if s.Status == models.SubscriptionStatusActive && s.EndDate.Before(now) {
			s.Status = models.SubscriptionStatusExpired
			if !seen[s.UserID] {
				seen[s.UserID] = true
				userIDs = append(userIDs, s.UserID)
			}
		}
	}
	return userIDs, nil
}

func (f *fakeSubscriptionRepo) CountActiveSubscriptions(_ *gorm.DB, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, s := range f.subscriptions {
		if s.Status == models.SubscriptionStatusActive && !s.EndDate.Before(now) {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubscriptionRepo) CreatePayment(_ *gorm.DB, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.payments {
		if existing.TransactionID == p.TransactionID {
			return gorm.ErrDuplicatedKey
		}
	}
	p.ID = fmt.Sprintf("payment-%d", len(f.payments)+1)
	p.CreatedAt = time.Now()
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakeSubscriptionRepo) SumCompletedPayments(_ *gorm.DB) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total float64
	for _, p := range f.payments {
		if p.Status == models.PaymentStatusCompleted {
			total += p.Amount
		}
	}
	return total, nil
}

func (f *fakeSubscriptionRepo) FindPaymentsByUser(_ *gorm.DB, userID string) ([]models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (f *fakeBookingRepo) CreateBooking(_ *gorm.DB, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = fmt.Sprintf("booking-%d", len(f.bookings)+1)
	b.CreatedAt = time.Now()
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) FindBookingByID(_ *gorm.DB, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, repositories.ErrBookingNotFound
}

func (f *fakeBookingRepo) FindBookingsByClient(_ *gorm.DB, clientID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindBookingsByCaregiver(_ *gorm.DB, caregiverID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CaregiverID == caregiverID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountBookings(_ *gorm.DB) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookings)), nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(_ *gorm.DB, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email || existing.IDNumber == u.IDNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == "" {
		u.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	}
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindUserByID(_ *gorm.DB, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindUserByEmail(_ *gorm.DB, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateLastLogin(_ *gorm.DB, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	return nil
}

func (f *fakeUserRepo) SetUserActive(_ *gorm.DB, id string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

func (f *fakeUserRepo) CountUsers(_ *gorm.DB) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountUsersByRole(_ *gorm.DB, role models.UserRole) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) FindRecentUsers(_ *gorm.DB, limit int) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

type fakeMailer struct {
	mu        sync.Mutex
	decisions []string
	failNext  bool
}

func (f *fakeMailer) Send(to, subject, body string) error { return nil }

func (f *fakeMailer) SendVerificationDecision(to, firstName, decision, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		f.failNext = false
		return fmt.Errorf("smtp unavailable")
	}
	f.decisions = append(f.decisions, to+":"+decision)
	return nil
}
