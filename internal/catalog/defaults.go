package catalog

import "github.com/MrJamesThe3rd/ipdledger/internal/ledger"

// Default is the built-in price list used when no CSV override is configured.
func Default() *Catalog {
	return New(defaultItems)
}

var defaultItems = []Item{
	{Name: "General Ward Bed (per day)", Category: ledger.CategoryAccommodation, UnitPrice: 150000},
	{Name: "Semi-Private Room (per day)", Category: ledger.CategoryAccommodation, UnitPrice: 300000},
	{Name: "Private Room (per day)", Category: ledger.CategoryAccommodation, UnitPrice: 500000},
	{Name: "ICU Bed (per day)", Category: ledger.CategoryAccommodation, UnitPrice: 1200000},

	{Name: "Nursing Care (per day)", Category: ledger.CategoryNursing, UnitPrice: 50000},
	{Name: "Special Nursing (per shift)", Category: ledger.CategoryNursing, UnitPrice: 80000},
	{Name: "Injection Administration", Category: ledger.CategoryNursing, UnitPrice: 5000},
	{Name: "Dressing", Category: ledger.CategoryNursing, UnitPrice: 20000},

	{Name: "X-Ray Chest", Category: ledger.CategoryDiagnostic, UnitPrice: 80000},
	{Name: "Complete Blood Count", Category: ledger.CategoryDiagnostic, UnitPrice: 35000},
	{Name: "ECG", Category: ledger.CategoryDiagnostic, UnitPrice: 30000},
	{Name: "Ultrasound Abdomen", Category: ledger.CategoryDiagnostic, UnitPrice: 150000},
	{Name: "CT Scan Head", Category: ledger.CategoryDiagnostic, UnitPrice: 450000},

	{Name: "Doctor Consultation", Category: ledger.CategoryProcedure, UnitPrice: 70000},
	{Name: "Minor Procedure", Category: ledger.CategoryProcedure, UnitPrice: 250000},
	{Name: "Suturing", Category: ledger.CategoryProcedure, UnitPrice: 120000},
	{Name: "Catheterization", Category: ledger.CategoryProcedure, UnitPrice: 60000},

	{Name: "IV Fluids (500 ml)", Category: ledger.CategoryMedicine, UnitPrice: 15000},
	{Name: "Antibiotic Course", Category: ledger.CategoryMedicine, UnitPrice: 90000},
	{Name: "Oxygen (per hour)", Category: ledger.CategoryMedicine, UnitPrice: 25000},

	{Name: "Physiotherapy Session", Category: ledger.CategoryTherapy, UnitPrice: 60000},
	{Name: "Nebulization", Category: ledger.CategoryTherapy, UnitPrice: 20000},
}
