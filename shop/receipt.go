package shop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"wecare/store"
)

// ReceiptWriter emits one plain-text invoice per transaction, purchases
// and restocks in separate folders. Filenames are derived from the
// party name, the first item and the date so repeated purchases do not
// collide.
type ReceiptWriter struct {
	purchaseDir string
	restockDir  string
}

func NewReceiptWriter(dir string) *ReceiptWriter {
	return &ReceiptWriter{
		purchaseDir: filepath.Join(dir, "purchases"),
		restockDir:  filepath.Join(dir, "restocks"),
	}
}

const receiptRule = "--------------------------------------------------"

func (w *ReceiptWriter) WritePurchase(customerName string, items []PurchaseItem, total decimal.Decimal, date string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nINVOICE - %s\nCustomer: %s\n%s\n", receiptRule, date, customerName, receiptRule)
	b.WriteString("Item\t\tQty\tFree\tPrice\n")
	b.WriteString(receiptRule + "\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%s\t%d\t%d\t₹%s\n", it.Name, it.Quantity, it.Free, it.LinePrice.StringFixed(2))
	}
	fmt.Fprintf(&b, "%s\nTOTAL:\t\t\t\t₹%s\n%s\n", receiptRule, total.StringFixed(2), receiptRule)

	itemPart := "purchase"
	if len(items) > 0 {
		itemPart = slug(items[0].Name)
		if len(items) > 1 {
			itemPart = fmt.Sprintf("%s_and_%d_more", itemPart, len(items)-1)
		}
	}
	filename := receiptFilename(customerName, itemPart, date)
	return filename, writeReceipt(filepath.Join(w.purchaseDir, filename), b.String())
}

func (w *ReceiptWriter) WriteRestock(vendor string, items []RestockItem, total decimal.Decimal) (string, error) {
	date := time.Now().Format(store.DateLayout)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nRESTOCK INVOICE - %s\nVendor: %s\n%s\n", receiptRule, date, vendor, receiptRule)
	b.WriteString("Product\t\tBrand\t\tQty\tRate\tAmount\n")
	b.WriteString(receiptRule + "\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%s\t%s\t%d\t₹%s\t₹%s\n", it.Name, it.Brand, it.Quantity, it.UnitCost.StringFixed(2), it.LineCost.StringFixed(2))
	}
	fmt.Fprintf(&b, "%s\nTOTAL:\t\t\t\t\t\t₹%s\n%s\n", receiptRule, total.StringFixed(2), receiptRule)

	itemPart := "restock"
	switch {
	case len(items) == 1:
		itemPart = slug(items[0].Name)
	case len(items) == 2:
		itemPart = slug(items[0].Name) + "_and_" + slug(items[1].Name)
	case len(items) > 2:
		itemPart = fmt.Sprintf("%s_and_%d_more", slug(items[0].Name), len(items)-1)
	}
	filename := receiptFilename(vendor, itemPart, date)
	return filename, writeReceipt(filepath.Join(w.restockDir, filename), b.String())
}

func receiptFilename(party, itemPart, date string) string {
	return fmt.Sprintf("%s_%s_%s.txt",
		strings.ReplaceAll(party, " ", "_"),
		itemPart,
		strings.ReplaceAll(date, "-", ""))
}

func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}

func writeReceipt(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
