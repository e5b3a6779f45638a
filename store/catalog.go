package store

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"wecare/models"
)

const (
	defaultReloadWindow = 2 * time.Second
	minReloadGap        = 500 * time.Millisecond
)

// Catalog owns the product map: one in-memory snapshot mirrored to a
// single JSON document. Every mutation follows force-reload, mutate in
// memory, persist-or-rollback, because whole-file rewrite is the only
// write operation the backing store has.
type Catalog struct {
	mu       sync.Mutex
	path     string
	products map[int]models.Product
	lastLoad time.Time

	// ReloadWindow throttles non-forced loads; reads inside the window
	// are served from memory.
	ReloadWindow time.Duration
}

func NewCatalog(path string) (*Catalog, error) {
	c := &Catalog{
		path:         path,
		products:     map[int]models.Product{},
		ReloadWindow: defaultReloadWindow,
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(true); err != nil {
		return nil, err
	}
	return c, nil
}

// Load refreshes the in-memory map from disk. Non-forced calls inside
// the reload window are no-ops, and no call re-reads more often than
// minReloadGap.
func (c *Catalog) Load(force bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(force)
}

// Save rewrites the whole document and re-reads it to confirm memory
// matches disk.
func (c *Catalog) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save()
}

func (c *Catalog) load(force bool) error {
	since := time.Since(c.lastLoad)
	if !force && since < c.ReloadWindow {
		return nil
	}
	if !c.lastLoad.IsZero() && since < minReloadGap {
		return nil
	}

	var raw map[string]models.Product
	found, err := readJSON(c.path, &raw)
	if err != nil {
		return err
	}
	if !found {
		c.products = defaultProducts()
		c.lastLoad = time.Now()
		return c.save()
	}
	c.install(raw)
	return nil
}

func (c *Catalog) save() error {
	out := make(map[string]models.Product, len(c.products))
	for id, p := range c.products {
		out[strconv.Itoa(id)] = p
	}
	if err := writeJSON(c.path, out); err != nil {
		return err
	}
	return c.reread()
}

// reread bypasses the throttle; used right after a save.
func (c *Catalog) reread() error {
	var raw map[string]models.Product
	if _, err := readJSON(c.path, &raw); err != nil {
		return err
	}
	c.install(raw)
	return nil
}

func (c *Catalog) install(raw map[string]models.Product) {
	m := make(map[int]models.Product, len(raw))
	for key, p := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		m[id] = p
	}
	c.products = m
	c.lastLoad = time.Now()
}

func (c *Catalog) nextID() int {
	max := 0
	for id := range c.products {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// MutateStock applies a signed stock delta and persists it. The delta is
// rejected when the product is unknown or the result would go negative;
// a failed persist rolls the in-memory value back.
func (c *Catalog) MutateStock(productID, delta int) (oldStock, newStock int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(true); err != nil {
		return 0, 0, err
	}
	p, ok := c.products[productID]
	if !ok {
		return 0, 0, fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
	}
	oldStock = p.Stock
	newStock = oldStock + delta
	if newStock < 0 {
		return 0, 0, fmt.Errorf("%w: %d available", ErrInsufficientStock, oldStock)
	}
	p.Stock = newStock
	c.products[productID] = p
	if err := c.save(); err != nil {
		p.Stock = oldStock
		c.products[productID] = p
		return 0, 0, err
	}
	return oldStock, newStock, nil
}

// Add assigns the next id, derives the price from cost and persists. A
// failed persist removes the record it just added.
func (c *Catalog) Add(p models.Product) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(true); err != nil {
		return 0, err
	}
	id := c.nextID()
	p.ID = id
	p.Price = models.PriceFromCost(p.Cost)
	p.Status = models.ProductActive
	if p.Category == "" {
		p.Category = "Skincare"
	}
	if p.CreatedDate == "" {
		p.CreatedDate = time.Now().Format(DateLayout)
	}
	c.products[id] = p
	if err := c.save(); err != nil {
		delete(c.products, id)
		return 0, err
	}
	return id, nil
}

// Update merges the non-nil fields into the product and re-derives the
// price when cost changes. A failed persist discards the uncommitted
// edit by re-reading from disk.
func (c *Catalog) Update(productID int, u models.ProductUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(true); err != nil {
		return err
	}
	p, ok := c.products[productID]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Brand != nil {
		p.Brand = *u.Brand
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.Cost != nil {
		p.Cost = *u.Cost
		p.Price = models.PriceFromCost(*u.Cost)
	}
	if u.Country != nil {
		p.Country = *u.Country
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	c.products[productID] = p
	if err := c.save(); err != nil {
		if rerr := c.reread(); rerr != nil {
			return rerr
		}
		return err
	}
	return nil
}

// SoftDelete retires a product. It stays in storage for referential
// integrity but drops out of customer-facing listings.
func (c *Catalog) SoftDelete(productID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(true); err != nil {
		return err
	}
	p, ok := c.products[productID]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
	}
	p.Status = models.ProductRetired
	c.products[productID] = p
	if err := c.save(); err != nil {
		if rerr := c.reread(); rerr != nil {
			return rerr
		}
		return err
	}
	return nil
}

func (c *Catalog) Get(productID int) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(false); err != nil {
		return models.Product{}, err
	}
	p, ok := c.products[productID]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
	}
	return p, nil
}

func (c *Catalog) All(activeOnly bool) ([]models.Product, error) {
	return c.filter(func(p models.Product) bool {
		return !activeOnly || p.Active()
	})
}

func (c *Catalog) ByCategory(category string) ([]models.Product, error) {
	return c.filter(func(p models.Product) bool {
		return p.Active() && p.Category == category
	})
}

func (c *Catalog) LowStock(threshold int) ([]models.Product, error) {
	return c.filter(func(p models.Product) bool {
		return p.Active() && p.Stock <= threshold
	})
}

func (c *Catalog) filter(keep func(models.Product) bool) ([]models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(false); err != nil {
		return nil, err
	}
	var out []models.Product
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// TotalStock sums units across all products, retired included.
func (c *Catalog) TotalStock() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(false); err != nil {
		return 0, err
	}
	total := 0
	for _, p := range c.products {
		total += p.Stock
	}
	return total, nil
}

func defaultProducts() map[int]models.Product {
	today := time.Now().Format(DateLayout)
	seed := []models.Product{
		{ID: 1, Name: "Vitamin C Serum", Brand: "Garnier", Category: "Skincare", Stock: 265, Cost: decimal.NewFromInt(1000), Country: "France", Description: "Brightening vitamin C serum for radiant skin"},
		{ID: 2, Name: "Skin Cleanser", Brand: "Cetaphil", Category: "Skincare", Stock: 272, Cost: decimal.NewFromInt(280), Country: "Switzerland", Description: "Gentle daily face cleanser for all skin types"},
		{ID: 3, Name: "Sunscreen", Brand: "Aqualogica", Category: "Skincare", Stock: 265, Cost: decimal.NewFromInt(700), Country: "India", Description: "Hydrating sunscreen with SPF protection"},
		{ID: 4, Name: "Moisturizing Cream", Brand: "Neutrogena", Category: "Skincare", Stock: 150, Cost: decimal.NewFromInt(450), Country: "USA", Description: "Hydrating cream for dry skin"},
		{ID: 5, Name: "Face Mask", Brand: "L'Oreal", Category: "Skincare", Stock: 180, Cost: decimal.NewFromInt(300), Country: "France", Description: "Clay face mask for deep cleansing"},
	}
	m := make(map[int]models.Product, len(seed))
	for _, p := range seed {
		p.Price = models.PriceFromCost(p.Cost)
		p.CreatedDate = today
		p.Status = models.ProductActive
		m[p.ID] = p
	}
	return m
}
