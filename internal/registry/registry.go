// internal/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tradie-receptionist/internal/model"
)

// ErrNotFound means no tenant is bound to the given key. An unregistered or
// misconfigured number is a normal outcome, callers must handle it.
var ErrNotFound = errors.New("tenant not found")

type tenantsFile struct {
	Tradies []model.Tenant `yaml:"tradies"`
}

// Registry indexes the tenant set by phone number ID. It is populated once
// at startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	byPhoneNumberID map[string]model.Tenant
	byPersonalPhone map[string]model.Tenant
	tenants         []model.Tenant
}

// Load reads the tenant file and builds the lookup indexes. Malformed
// records, duplicate phone number IDs, or missing identity fields are fatal:
// the process must not start with a partial tenant table.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tenants file: %w", err)
	}

	var f tenantsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tenants file: %w", err)
	}
	if len(f.Tradies) == 0 {
		return nil, errors.New("tenants file contains no tradies")
	}

	r := &Registry{
		byPhoneNumberID: make(map[string]model.Tenant, len(f.Tradies)),
		byPersonalPhone: make(map[string]model.Tenant, len(f.Tradies)),
		tenants:         f.Tradies,
	}

	for _, t := range f.Tradies {
		if t.ID == "" || t.VapiPhoneNumberID == "" {
			return nil, fmt.Errorf("tenant %q: id and vapiPhoneNumberId are required", t.BusinessName)
		}
		if t.Name == "" || t.BusinessName == "" || t.TradeType == "" || t.PersonalPhone == "" {
			return nil, fmt.Errorf("tenant %s: name, businessName, tradeType and personalPhone are required", t.ID)
		}
		if _, dup := r.byPhoneNumberID[t.VapiPhoneNumberID]; dup {
			return nil, fmt.Errorf("duplicate phone number ID %s", t.VapiPhoneNumberID)
		}
		r.byPhoneNumberID[t.VapiPhoneNumberID] = t
		r.byPersonalPhone[normalizePhone(t.PersonalPhone)] = t
	}

	return r, nil
}

// Resolve maps a platform phone number ID to its tenant.
func (r *Registry) Resolve(phoneNumberID string) (model.Tenant, error) {
	t, ok := r.byPhoneNumberID[phoneNumberID]
	if !ok {
		return model.Tenant{}, fmt.Errorf("phone number ID %s: %w", phoneNumberID, ErrNotFound)
	}
	return t, nil
}

// ResolveByPersonalPhone maps a tradie's own number to their tenant record.
// Used by the incoming-SMS command webhook.
func (r *Registry) ResolveByPersonalPhone(phone string) (model.Tenant, error) {
	t, ok := r.byPersonalPhone[normalizePhone(phone)]
	if !ok {
		return model.Tenant{}, fmt.Errorf("personal phone %s: %w", phone, ErrNotFound)
	}
	return t, nil
}

// Tenants returns the full loaded set, in file order.
func (r *Registry) Tenants() []model.Tenant {
	return r.tenants
}

// Len reports how many tenants are loaded.
func (r *Registry) Len() int {
	return len(r.byPhoneNumberID)
}

func normalizePhone(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}
