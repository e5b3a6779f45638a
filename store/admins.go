package store

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"wecare/models"
)

type Admins struct {
	mu   sync.Mutex
	path string
}

// NewAdmins opens the admin file, seeding the default super-admin on
// first run.
func NewAdmins(path string) (*Admins, error) {
	s := &Admins{path: path}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.readLocked()
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		m["1"] = models.Admin{
			AdminID:     1,
			Username:    "admin",
			Password:    string(hash),
			Email:       "admin@wecarebeauty.com",
			FullName:    "System Administrator",
			Role:        models.RoleSuperAdmin,
			CreatedDate: time.Now().Format(DateLayout),
			IsActive:    true,
		}
		if err := writeJSON(s.path, m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Admins) readLocked() (map[string]models.Admin, error) {
	m := map[string]models.Admin{}
	if _, err := readJSON(s.path, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Authenticate checks credentials against active admins and stamps
// last_login on success.
func (s *Admins) Authenticate(username, password string) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.readLocked()
	if err != nil {
		return models.Admin{}, err
	}
	for key, a := range m {
		if a.Username != username || !a.IsActive {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
			return models.Admin{}, ErrBadCredentials
		}
		a.LastLogin = time.Now().Format(TimestampLayout)
		m[key] = a
		if err := writeJSON(s.path, m); err != nil {
			return models.Admin{}, err
		}
		return a, nil
	}
	return models.Admin{}, ErrBadCredentials
}

func (s *Admins) Create(username, password, email, fullName, role string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.readLocked()
	if err != nil {
		return 0, err
	}
	for _, a := range m {
		if a.Username == username {
			return 0, ErrUsernameTaken
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	if role == "" {
		role = models.RoleAdmin
	}

	id := 1
	for key := range m {
		if n, err := strconv.Atoi(key); err == nil && n >= id {
			id = n + 1
		}
	}
	m[strconv.Itoa(id)] = models.Admin{
		AdminID:     id,
		Username:    username,
		Password:    string(hash),
		Email:       email,
		FullName:    fullName,
		Role:        role,
		CreatedDate: time.Now().Format(DateLayout),
		IsActive:    true,
	}
	if err := writeJSON(s.path, m); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Admins) Get(adminID int) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.readLocked()
	if err != nil {
		return models.Admin{}, err
	}
	a, ok := m[strconv.Itoa(adminID)]
	if !ok {
		return models.Admin{}, fmt.Errorf("%w: id %d", ErrAdminNotFound, adminID)
	}
	return a, nil
}

func (s *Admins) All() ([]models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.readLocked()
	if err != nil {
		return nil, err
	}
	out := make([]models.Admin, 0, len(m))
	for _, a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AdminID < out[j].AdminID })
	return out, nil
}
