package config

// Billing holds the static tax rates applied at checkout. Rates are
// configuration, not persisted per transaction; the checkout record keeps
// the computed amounts so historical bills stay reproducible.
type Billing struct {
	GovernmentTax float64 `json:"government_tax" yaml:"government_tax"`
	ServiceTax    float64 `json:"service_tax" yaml:"service_tax"`
}

// Restaurant is the identity block printed on receipts.
type Restaurant struct {
	Name               string `json:"name" yaml:"name"`
	Company            string `json:"company" yaml:"company"`
	RegistrationNumber string `json:"registration_number" yaml:"registration_number"`
	Address            string `json:"address" yaml:"address"`
	Address2           string `json:"address_2" yaml:"address_2"`
	City               string `json:"city" yaml:"city"`
	State              string `json:"state" yaml:"state"`
	Telephone          string `json:"telephone" yaml:"telephone"`
	SstID              string `json:"sst_id" yaml:"sst_id"`
}
