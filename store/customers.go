package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"wecare/models"
)

// pointsPerRupees: customers earn 1 loyalty point per 100 rupees spent.
var pointsPerRupees = decimal.NewFromInt(100)

type Customers struct {
	mu   sync.Mutex
	path string
}

func NewCustomers(path string) *Customers {
	return &Customers{path: path}
}

func (s *Customers) read() (map[string]models.Customer, error) {
	m := map[string]models.Customer{}
	if _, err := readJSON(s.path, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Register creates a customer with a bcrypt password hash. Emails are
// unique case-insensitively and stored lowercased.
func (s *Customers) Register(name, email, phone, password string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return 0, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, c := range m {
		if strings.EqualFold(c.Email, email) {
			return 0, ErrEmailRegistered
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	id := 1
	for key := range m {
		if n, err := strconv.Atoi(key); err == nil && n >= id {
			id = n + 1
		}
	}
	m[strconv.Itoa(id)] = models.Customer{
		CustomerID: id,
		Name:       name,
		Email:      email,
		Phone:      phone,
		Password:   string(hash),
		JoinDate:   time.Now().Format(DateLayout),
		TotalSpent: decimal.Zero,
	}
	if err := writeJSON(s.path, m); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Customers) Authenticate(email, password string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return models.Customer{}, err
	}
	for _, c := range m {
		if strings.EqualFold(c.Email, email) {
			if bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) != nil {
				return models.Customer{}, ErrBadCredentials
			}
			return c, nil
		}
	}
	return models.Customer{}, ErrBadCredentials
}

func (s *Customers) Get(customerID int) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.read()
	if err != nil {
		return models.Customer{}, err
	}
	c, ok := m[strconv.Itoa(customerID)]
	if !ok {
		return models.Customer{}, fmt.Errorf("%w: id %d", ErrCustomerNotFound, customerID)
	}
	return c, nil
}

func (s *Customers) All() ([]models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make([]models.Customer, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out, nil
}

// RecordPurchase rolls a completed purchase into the customer record and
// returns the loyalty points earned.
func (s *Customers) RecordPurchase(customerID int, total decimal.Decimal) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return 0, err
	}
	key := strconv.Itoa(customerID)
	c, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: id %d", ErrCustomerNotFound, customerID)
	}
	points := total.Div(pointsPerRupees).IntPart()
	c.TotalSpent = c.TotalSpent.Add(total)
	c.PurchaseCount++
	c.Points += points
	c.LastPurchase = time.Now().Format(DateLayout)
	m[key] = c
	if err := writeJSON(s.path, m); err != nil {
		return 0, err
	}
	return points, nil
}

// MarkWalletSetup flags that the customer completed wallet setup.
func (s *Customers) MarkWalletSetup(customerID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}
	key := strconv.Itoa(customerID)
	c, ok := m[key]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrCustomerNotFound, customerID)
	}
	c.WalletSetup = true
	m[key] = c
	return writeJSON(s.path, m)
}

// Delete removes a customer after confirming their password.
func (s *Customers) Delete(customerID int, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}
	key := strconv.Itoa(customerID)
	c, ok := m[key]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrCustomerNotFound, customerID)
	}
	if bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) != nil {
		return ErrWrongPassword
	}
	delete(m, key)
	return writeJSON(s.path, m)
}
