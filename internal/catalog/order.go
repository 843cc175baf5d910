package catalog

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
)

//go:generate mockgen -source=order.go -destination=appender_mock.go -package=catalog
type Appender interface {
	Append(ctx context.Context, nt ledger.NewTransaction) (*ledger.Transaction, error)
}

// OrderRequest describes one billable service. Exactly one of ServiceName
// (catalog item) or CustomName (ad-hoc item) is used; ServiceName wins when
// both are set. UnitPrice is required for custom items and, when positive,
// overrides the catalog price.
type OrderRequest struct {
	ServiceName string
	CustomName  string
	UnitPrice   int64
	Quantity    int64
	Category    string
}

type Orderer struct {
	catalog *Catalog
	ledger  Appender
}

func NewOrderer(c *Catalog, l Appender) *Orderer {
	return &Orderer{catalog: c, ledger: l}
}

func (o *Orderer) Catalog() *Catalog {
	return o.catalog
}

// Order resolves the request to a unit price and appends a CHARGE of
// unitPrice * quantity against the patient.
func (o *Orderer) Order(ctx context.Context, patientID uuid.UUID, req OrderRequest) (*ledger.Transaction, error) {
	nt, err := o.compose(patientID, req)
	if err != nil {
		return nil, err
	}

	return o.ledger.Append(ctx, nt)
}

func (o *Orderer) compose(patientID uuid.UUID, req OrderRequest) (ledger.NewTransaction, error) {
	if req.Quantity < 1 {
		return ledger.NewTransaction{}, ErrInvalidQuantity
	}

	name := strings.TrimSpace(req.ServiceName)
	unitPrice := req.UnitPrice
	category := strings.TrimSpace(req.Category)

	switch {
	case name != "":
		item, err := o.catalog.Lookup(name)
		if err != nil {
			return ledger.NewTransaction{}, fmt.Errorf("%w: %q", err, name)
		}

		name = item.Name

		if unitPrice == 0 {
			unitPrice = item.UnitPrice
		}

		if category == "" {
			category = item.Category
		}
	case strings.TrimSpace(req.CustomName) != "":
		name = strings.TrimSpace(req.CustomName)
	default:
		return ledger.NewTransaction{}, ErrMissingService
	}

	// Catalog prices are checked too; a stale list may carry zero entries.
	if unitPrice <= 0 || unitPrice > math.MaxInt64/req.Quantity {
		return ledger.NewTransaction{}, ledger.ErrInvalidAmount
	}

	return ledger.NewTransaction{
		PatientID:   patientID,
		Kind:        ledger.KindCharge,
		Category:    category,
		Amount:      unitPrice * req.Quantity,
		Description: describe(name, unitPrice, req.Quantity),
	}, nil
}

func describe(name string, unitPrice, quantity int64) string {
	if quantity == 1 {
		return name
	}

	return fmt.Sprintf("%s x%d @ %s", name, quantity, FormatAmount(unitPrice))
}
