// internal/model/tenant.go
package model

// Tenant is one configured business using the shared call-handling service,
// keyed by its bound voice-platform phone number ID. Records are loaded once
// at startup and never mutated afterwards.
type Tenant struct {
	ID                string   `yaml:"id" json:"id"`
	Name              string   `yaml:"name" json:"name"`
	BusinessName      string   `yaml:"businessName" json:"business_name"`
	TradeType         string   `yaml:"tradeType" json:"trade_type"`
	VapiPhoneNumberID string   `yaml:"vapiPhoneNumberId" json:"vapi_phone_number_id"`
	PersonalPhone     string   `yaml:"personalPhone" json:"personal_phone"`
	ServiceArea       string   `yaml:"serviceArea" json:"service_area"`
	Services          []string `yaml:"services" json:"services"`
	EmergencyKeywords []string `yaml:"emergencyKeywords" json:"emergency_keywords"`
	Timezone          string   `yaml:"timezone" json:"timezone"`
}
