package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/erp-api/internal/domain/enum"
	"github.com/sangkips/erp-api/pkg/apperror"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	require.True(t, apperror.IsValidation(err), "expected a validation error, got %v", err)
	out := map[string]string{}
	for _, f := range apperror.GetAppError(err).Errors {
		out[f.Field] = f.Message
	}
	return out
}

func newCustomerService() (*CustomerService, *fakeCustomerRepo) {
	repo := newFakeCustomerRepo()
	return NewCustomerService(repo, testValidator, fixedClock), repo
}

func TestCreateCustomerAppliesDefaults(t *testing.T) {
	svc, _ := newCustomerService()

	c, err := svc.CreateCustomer(context.Background(), &CustomerInput{
		Name:  ptr(" A "),
		Email: ptr("A@X.com"),
		Phone: ptr("555-0100"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, "A", c.Name)
	assert.Equal(t, "a@x.com", c.Email)
	assert.Equal(t, enum.CustomerStatusActive, c.Status)
	assert.Equal(t, fixedNow, c.CreatedDate)
	assert.Equal(t, 0, c.TotalOrders)
}

func TestCreateCustomerReportsAllMissingFields(t *testing.T) {
	svc, _ := newCustomerService()

	_, err := svc.CreateCustomer(context.Background(), &CustomerInput{
		TotalOrders: ptr(-1),
		Status:      ptr(enum.CustomerStatus("VIP")),
	})
	fields := fieldsOf(t, err)

	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "totalOrders")
	assert.Contains(t, fields, "status")
}

func TestCreateCustomerRejectsDuplicateEmailAnyCase(t *testing.T) {
	svc, _ := newCustomerService()
	ctx := context.Background()

	_, err := svc.CreateCustomer(ctx, &CustomerInput{Name: ptr("A"), Email: ptr("a@x.com"), Phone: ptr("1")})
	require.NoError(t, err)

	_, err = svc.CreateCustomer(ctx, &CustomerInput{Name: ptr("B"), Email: ptr("A@X.COM"), Phone: ptr("2")})
	assert.Equal(t, "already exists", fieldsOf(t, err)["email"])
}

func TestCreateCustomerDuplicateCaughtByStore(t *testing.T) {
	svc, repo := newCustomerService()
	ctx := context.Background()

	_, err := svc.CreateCustomer(ctx, &CustomerInput{Name: ptr("A"), Email: ptr("a@x.com"), Phone: ptr("1")})
	require.NoError(t, err)

	repo.hideEmails = true
	_, err = svc.CreateCustomer(ctx, &CustomerInput{Name: ptr("B"), Email: ptr("a@x.com"), Phone: ptr("2")})
	assert.Equal(t, "already exists", fieldsOf(t, err)["email"])
}

func TestUpdateCustomerMergesAndRevalidates(t *testing.T) {
	svc, _ := newCustomerService()
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, &CustomerInput{Name: ptr("A"), Email: ptr("a@x.com"), Phone: ptr("1")})
	require.NoError(t, err)

	updated, err := svc.UpdateCustomer(ctx, c.ID, &CustomerInput{Company: ptr("Acme"), Status: ptr(enum.CustomerStatusPending)})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, "a@x.com", updated.Email)
	assert.Equal(t, enum.CustomerStatusPending, updated.Status)

	// keeping its own email is not a duplicate
	_, err = svc.UpdateCustomer(ctx, c.ID, &CustomerInput{Email: ptr("A@x.com")})
	require.NoError(t, err)

	_, err = svc.UpdateCustomer(ctx, c.ID, &CustomerInput{Name: ptr("  ")})
	assert.Equal(t, "is required", fieldsOf(t, err)["name"])
}

func TestCustomerNotFound(t *testing.T) {
	svc, _ := newCustomerService()
	ctx := context.Background()

	_, err := svc.GetCustomer(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.UpdateCustomer(ctx, uuid.New(), &CustomerInput{})
	assert.True(t, apperror.IsNotFound(err))

	assert.True(t, apperror.IsNotFound(svc.DeleteCustomer(ctx, uuid.New())))
}

func TestDeleteCustomer(t *testing.T) {
	svc, _ := newCustomerService()
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, &CustomerInput{Name: ptr("A"), Email: ptr("a@x.com"), Phone: ptr("1")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomer(ctx, c.ID))
	list, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateCustomerDates(t *testing.T) {
	svc, _ := newCustomerService()
	ctx := context.Background()

	var in CustomerInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","email":"a@x.com","phone":"1","lastContact":"2024-05-01"}`), &in))
	c, err := svc.CreateCustomer(ctx, &in)
	require.NoError(t, err)
	require.NotNil(t, c.LastContact)
	assert.Equal(t, fixedNow, c.CreatedDate)

	var clear CustomerInput
	require.NoError(t, json.Unmarshal([]byte(`{"lastContact":null}`), &clear))
	updated, err := svc.UpdateCustomer(ctx, c.ID, &clear)
	require.NoError(t, err)
	assert.Nil(t, updated.LastContact)
	assert.Equal(t, fixedNow, updated.CreatedDate)

	var blank CustomerInput
	require.NoError(t, json.Unmarshal([]byte(`{"createdDate":""}`), &blank))
	_, err = svc.UpdateCustomer(ctx, c.ID, &blank)
	assert.Equal(t, "is required", fieldsOf(t, err)["createdDate"])

	stored, err := svc.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, stored.CreatedDate)
}
