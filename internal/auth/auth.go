package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/api-sage/core-banking-ledger/internal/logger"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var ErrUsernameTaken = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidSession = errors.New("invalid session")

type user struct {
	id           string
	username     string
	passwordHash []byte
	role         Role
	accounts     []string
	createdAt    time.Time
	lastLogin    time.Time
}

type session struct {
	userID       string
	loginTime    time.Time
	lastActivity time.Time
}

// UserInfo is the read-only projection handed to callers.
type UserInfo struct {
	UserID         string
	Username       string
	Role           Role
	AccountNumbers []string
	CreatedAt      time.Time
	LastLogin      time.Time
}

type Stats struct {
	TotalUsers     int
	AdminUsers     int
	ActiveSessions int
}

// Manager owns users and sessions and answers the capability checks the
// ledger services gate on. Passwords are stored as bcrypt hashes only.
type Manager struct {
	mu       sync.Mutex
	users    map[string]*user
	sessions map[string]*session
}

func NewManager() *Manager {
	return &Manager{
		users:    make(map[string]*user),
		sessions: make(map[string]*session),
	}
}

// CreateUser registers a user and returns the new user ID. The password is
// policy-checked and hashed before the manager lock is taken.
func (m *Manager) CreateUser(username, password string, role Role) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.username == username {
			return "", ErrUsernameTaken
		}
	}

	u := &user{
		id:           fmt.Sprintf("user_%s", uuid.New().String()),
		username:     username,
		passwordHash: hash,
		role:         role,
		createdAt:    time.Now(),
	}
	m.users[u.id] = u

	logger.Info("auth manager user created", logger.Fields{
		"userId":   u.id,
		"username": u.username,
		"role":     string(u.role),
	})
	return u.id, nil
}

// Login verifies the credentials and opens a session. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (m *Manager) Login(username, password string) (string, error) {
	m.mu.Lock()
	u := m.findByUsernameLocked(username)
	m.mu.Unlock()

	if u == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("compare password: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	sessionID := fmt.Sprintf("session_%s", uuid.New().String())
	m.sessions[sessionID] = &session{
		userID:       u.id,
		loginTime:    now,
		lastActivity: now,
	}
	u.lastLogin = now

	logger.Info("auth manager login", logger.Fields{
		"userId":   u.id,
		"username": u.username,
	})
	return sessionID, nil
}

func (m *Manager) Logout(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return false
	}
	delete(m.sessions, sessionID)
	return true
}

// ValidateSession reports whether the session is live and returns the user
// it belongs to, refreshing the session's last-activity time.
func (m *Manager) ValidateSession(sessionID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return "", false
	}
	s.lastActivity = time.Now()
	return s.userID, true
}

func (m *Manager) IsAdmin(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return false
	}
	s.lastActivity = time.Now()

	u, ok := m.users[s.userID]
	return ok && u.role == RoleAdmin
}

// LinkAccount attaches an account number to a user. Linking twice is a
// no-op.
func (m *Manager) LinkAccount(userID, accountNumber string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	for _, linked := range u.accounts {
		if linked == accountNumber {
			return nil
		}
	}
	u.accounts = append(u.accounts, accountNumber)
	return nil
}

func (m *Manager) OwnsAccount(sessionID, accountNumber string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return false
	}
	s.lastActivity = time.Now()

	u, ok := m.users[s.userID]
	if !ok {
		return false
	}
	for _, linked := range u.accounts {
		if linked == accountNumber {
			return true
		}
	}
	return false
}

// ChangePassword verifies the old password and applies the policy to the
// new one.
func (m *Manager) ChangePassword(sessionID, oldPassword, newPassword string) error {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()
		return ErrInvalidSession
	}
	u := m.users[s.userID]
	m.mu.Unlock()

	if u == nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	u.passwordHash = hash
	return nil
}

func (m *Manager) UserInfo(sessionID string) (UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return UserInfo{}, ErrInvalidSession
	}
	u, ok := m.users[s.userID]
	if !ok {
		return UserInfo{}, ErrUserNotFound
	}

	accounts := make([]string, len(u.accounts))
	copy(accounts, u.accounts)
	return UserInfo{
		UserID:         u.id,
		Username:       u.username,
		Role:           u.role,
		AccountNumbers: accounts,
		CreatedAt:      u.createdAt,
		LastLogin:      u.lastLogin,
	}, nil
}

func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	admins := 0
	for _, u := range m.users {
		if u.role == RoleAdmin {
			admins++
		}
	}
	return Stats{
		TotalUsers:     len(m.users),
		AdminUsers:     admins,
		ActiveSessions: len(m.sessions),
	}
}

func (m *Manager) findByUsernameLocked(username string) *user {
	for _, u := range m.users {
		if u.username == username {
			return u
		}
	}
	return nil
}
