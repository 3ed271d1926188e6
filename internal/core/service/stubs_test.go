package service

import (
	"context"
	"sort"
	"time"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

func strptr(s string) *string { return &s }

// --- users ---

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *stubUserRepo) add(u domain.User) *domain.User {
	if u.ID == 0 {
		u.ID = r.nextID
	}
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
	r.users[u.ID] = &u
	return &u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailRegistered
		}
	}
	clone := *user
	clone.ID = r.nextID
	r.nextID++
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	clone.PasswordHash = nil
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, page ports.Page) ([]domain.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		clone := *r.users[id]
		clone.PasswordHash = nil
		out = append(out, clone)
	}
	if page.Skip >= len(out) {
		return nil, nil
	}
	out = out[page.Skip:]
	if page.Take > 0 && page.Take < len(out) {
		out = out[:page.Take]
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.FirstName != nil {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = patch.LastName
	}
	if patch.TechSkills != nil {
		u.TechSkills = patch.TechSkills
	}
	if patch.ResumeLink != nil {
		u.ResumeLink = patch.ResumeLink
	}
	if patch.EnglishLevel != nil {
		u.EnglishLevel = patch.EnglishLevel
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdateEnabled(_ context.Context, id int64, enabled bool) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Enabled = enabled
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = &hash
	return nil
}

func (r *stubUserRepo) FindPrincipal(_ context.Context, id int64) (*domain.Principal, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.Principal{User: *u}, nil
}

// --- clients ---

type stubClientRepo struct {
	clients map[int64]*domain.Client
	nextID  int64
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[int64]*domain.Client), nextID: 1}
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Key == client.Key || c.Name == client.Name {
			return nil, domain.ErrClientExists
		}
	}
	clone := *client
	clone.ID = r.nextID
	r.nextID++
	r.clients[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) List(_ context.Context, _ ports.Page) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, id int64, patch ports.ClientPatch) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Key != nil {
		c.Key = *patch.Key
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) UpdateArchived(_ context.Context, id int64, archived bool) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	c.Archived = archived
	clone := *c
	return &clone, nil
}

// --- accounts ---

type stubAccountRepo struct {
	accounts map[int64]*domain.Account
	nextID   int64
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[int64]*domain.Account), nextID: 1}
}

func (r *stubAccountRepo) add(a domain.Account) *domain.Account {
	if a.ID == 0 {
		a.ID = r.nextID
	}
	if a.ID >= r.nextID {
		r.nextID = a.ID + 1
	}
	r.accounts[a.ID] = &a
	return &a
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, a := range r.accounts {
		if !a.Archived && a.ResponsibleID == account.ResponsibleID {
			return nil, domain.ErrResponsibleAssigned
		}
	}
	clone := *account
	clone.ID = r.nextID
	r.nextID++
	r.accounts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) FindByResponsible(_ context.Context, responsibleID int64) (*domain.Account, error) {
	for _, a := range r.accounts {
		if !a.Archived && a.ResponsibleID == responsibleID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) List(_ context.Context, _ ports.Page) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAccountRepo) Update(_ context.Context, id int64, patch ports.AccountPatch) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Key != nil {
		a.Key = *patch.Key
	}
	if patch.ClientID != nil {
		a.ClientID = *patch.ClientID
	}
	if patch.ResponsibleID != nil {
		a.ResponsibleID = *patch.ResponsibleID
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) UpdateArchived(_ context.Context, id int64, archived bool) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.Archived = archived
	clone := *a
	return &clone, nil
}

// --- assignations ---

type stubAssignationRepo struct {
	rows   map[int64]*domain.Assignation
	logs   []domain.AssignationLog
	nextID int64
}

func newStubAssignationRepo() *stubAssignationRepo {
	return &stubAssignationRepo{rows: make(map[int64]*domain.Assignation), nextID: 1}
}

func (r *stubAssignationRepo) Create(_ context.Context, userID, accountID int64, start time.Time) (*domain.Assignation, error) {
	for _, a := range r.rows {
		if a.UserID == userID && a.Status {
			return nil, domain.ErrUserAlreadyAssigned
		}
	}
	row := &domain.Assignation{
		ID:        r.nextID,
		UserID:    userID,
		AccountID: accountID,
		StartDate: start,
		Status:    true,
	}
	r.nextID++
	r.rows[row.ID] = row
	r.logs = append(r.logs, domain.AssignationLog{
		AssignationID: row.ID,
		UserID:        userID,
		Type:          domain.LogAssigned,
		Date:          start,
	})
	clone := *row
	return &clone, nil
}

func (r *stubAssignationRepo) FindByID(_ context.Context, id int64) (*domain.Assignation, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrAssignationNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAssignationRepo) FindActiveByUser(_ context.Context, userID int64) ([]domain.Assignation, error) {
	var out []domain.Assignation
	for _, a := range r.rows {
		if a.UserID == userID && a.Status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAssignationRepo) List(_ context.Context, _ ports.ListAssignationsFilter) ([]domain.Assignation, error) {
	var out []domain.Assignation
	for _, a := range r.rows {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAssignationRepo) Terminate(_ context.Context, id int64, at time.Time) (*domain.Assignation, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrAssignationNotFound
	}
	a.Status = false
	a.EndDate = &at
	r.logs = append(r.logs, domain.AssignationLog{
		AssignationID: a.ID,
		UserID:        a.UserID,
		Type:          domain.LogRemoved,
		Date:          at,
	})
	clone := *a
	return &clone, nil
}

// --- tokens, roles, notifier ---

type stubTokenRepo struct {
	tokens map[string]*domain.PasswordToken
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: make(map[string]*domain.PasswordToken)}
}

func (r *stubTokenRepo) Create(_ context.Context, token *domain.PasswordToken) error {
	clone := *token
	r.tokens[clone.ID] = &clone
	return nil
}

func (r *stubTokenRepo) FindByID(_ context.Context, id string) (*domain.PasswordToken, error) {
	t, ok := r.tokens[id]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	clone := *t
	return &clone, nil
}

func (r *stubTokenRepo) Expire(_ context.Context, id string, at time.Time) error {
	t, ok := r.tokens[id]
	if !ok {
		return domain.ErrTokenInvalid
	}
	t.ExpirationDate = at
	return nil
}

type stubRoleRepo struct {
	roles []domain.Role
}

func (r *stubRoleRepo) List(_ context.Context, _ ports.Page) ([]domain.Role, error) {
	return r.roles, nil
}

type stubNotifier struct {
	sent []ports.ResetNotification
}

func (n *stubNotifier) EnqueueReset(notification ports.ResetNotification) {
	n.sent = append(n.sent, notification)
}

type stubInvalidator struct {
	invalidated []int64
	err         error
}

func (i *stubInvalidator) Invalidate(_ context.Context, userID int64) error {
	if i.err != nil {
		return i.err
	}
	i.invalidated = append(i.invalidated, userID)
	return nil
}
