package http_handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/leads-api/internal/application/account"
	"github.com/baechuer/leads-api/internal/application/email"
	"github.com/baechuer/leads-api/internal/application/lead"
	"github.com/baechuer/leads-api/internal/application/template"
	"github.com/baechuer/leads-api/internal/domain"
	"github.com/baechuer/leads-api/internal/transport/http/dto"
)

// ---- account ----

type fakeAccountSvc struct {
	items     []domain.Account
	gotFilter account.ListFilter
	gotCreate account.CreateCmd
	gotUpdate account.UpdateCmd
	gotDelete int64
	err       error
}

func (f *fakeAccountSvc) List(_ context.Context, flt account.ListFilter) ([]domain.Account, error) {
	f.gotFilter = flt
	return f.items, f.err
}

func (f *fakeAccountSvc) Get(_ context.Context, id int64) (domain.Account, error) {
	if f.err != nil {
		return domain.Account{}, f.err
	}
	return domain.Account{ID: id, Name: "Acme"}, nil
}

func (f *fakeAccountSvc) Create(_ context.Context, cmd account.CreateCmd) (domain.Account, error) {
	f.gotCreate = cmd
	return domain.Account{ID: 1, Name: cmd.Name, MainEmail: cmd.MainEmail}, f.err
}

func (f *fakeAccountSvc) Update(_ context.Context, cmd account.UpdateCmd) (domain.Account, error) {
	f.gotUpdate = cmd
	return domain.Account{ID: cmd.ID, Name: "Renamed"}, f.err
}

func (f *fakeAccountSvc) Delete(_ context.Context, id int64) error {
	f.gotDelete = id
	return f.err
}

func TestAccountList_PassesSearch(t *testing.T) {
	svc := &fakeAccountSvc{items: []domain.Account{{ID: 2, Name: "Acme"}}}
	h := NewAccountHandler(svc)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/accounts?search=acme", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "acme", svc.gotFilter.Search)
	var body []dto.AccountView
	mustReadJSON(t, rr.Body, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "Acme", body[0].Name)
}

func TestAccountList_EmptyIsArray(t *testing.T) {
	h := NewAccountHandler(&fakeAccountSvc{})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/accounts", nil))
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestAccountCreate(t *testing.T) {
	svc := &fakeAccountSvc{}
	h := NewAccountHandler(svc)

	body := mustJSONBody(t, map[string]string{"name": "Acme", "main_email": "ops@acme.io"})
	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/accounts", body))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, account.CreateCmd{Name: "Acme", MainEmail: "ops@acme.io"}, svc.gotCreate)
}

func TestAccountCreate_InvalidMainEmail(t *testing.T) {
	svc := &fakeAccountSvc{}
	h := NewAccountHandler(svc)

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/accounts", mustJSONBody(t, map[string]string{"name": "A", "main_email": "nope"})))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := readErrCode(t, rr.Body)
	assert.Equal(t, "invalid_field", env.Error.Code)
	assert.Equal(t, "main_email", env.Error.Meta["field"])
}

func TestAccountUpdate_Partial(t *testing.T) {
	svc := &fakeAccountSvc{}
	h := NewAccountHandler(svc)

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/accounts/9", mustJSONBody(t, map[string]string{"name": "Renamed"})), "id", "9")
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(9), svc.gotUpdate.ID)
	require.NotNil(t, svc.gotUpdate.Name)
	assert.Equal(t, "Renamed", *svc.gotUpdate.Name)
	assert.Nil(t, svc.gotUpdate.MainEmail)
}

func TestAccountGet_BadID(t *testing.T) {
	h := NewAccountHandler(&fakeAccountSvc{})

	for _, id := range []string{"abc", "0", "-3"} {
		rr := httptest.NewRecorder()
		h.Get(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/"+id, nil), "id", id))

		require.Equal(t, http.StatusBadRequest, rr.Code, id)
		env := readErrCode(t, rr.Body)
		assert.Equal(t, "invalid_field", env.Error.Code)
		assert.Equal(t, "id", env.Error.Meta["field"])
	}
}

func TestAccountGet_NotFound(t *testing.T) {
	h := NewAccountHandler(&fakeAccountSvc{err: domain.ErrAccountNotFound()})

	rr := httptest.NewRecorder()
	h.Get(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/5", nil), "id", "5"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "account_not_found", readErrCode(t, rr.Body).Error.Code)
}

func TestAccountDelete(t *testing.T) {
	svc := &fakeAccountSvc{}
	h := NewAccountHandler(svc)

	rr := httptest.NewRecorder()
	h.Delete(rr, withURLParam(httptest.NewRequest(http.MethodDelete, "/accounts/5", nil), "id", "5"))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, int64(5), svc.gotDelete)
}

// ---- lead ----

type fakeLeadSvc struct {
	gotFilter lead.ListFilter
	gotCreate lead.CreateCmd
	gotUpdate lead.UpdateCmd
	err       error
}

func (f *fakeLeadSvc) List(_ context.Context, flt lead.ListFilter) ([]domain.Lead, error) {
	f.gotFilter = flt
	return []domain.Lead{{ID: 1, Email: "a@x.com", Status: domain.LeadSent}}, f.err
}

func (f *fakeLeadSvc) Get(_ context.Context, id int64) (domain.Lead, error) {
	return domain.Lead{ID: id, Email: "a@x.com", Status: domain.LeadUnused}, f.err
}

func (f *fakeLeadSvc) Create(_ context.Context, cmd lead.CreateCmd) (domain.Lead, error) {
	f.gotCreate = cmd
	return domain.Lead{ID: 1, Email: cmd.Email, Status: domain.LeadUnused}, f.err
}

func (f *fakeLeadSvc) Update(_ context.Context, cmd lead.UpdateCmd) (domain.Lead, error) {
	f.gotUpdate = cmd
	return domain.Lead{ID: cmd.ID, Email: "a@x.com", Status: domain.LeadUnused}, f.err
}

func (f *fakeLeadSvc) Delete(context.Context, int64) error { return f.err }

func TestLeadList_Filters(t *testing.T) {
	svc := &fakeLeadSvc{}
	h := NewLeadHandler(svc)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/leads?search=bob&status=sent&assignedTo=alice", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, lead.ListFilter{Search: "bob", Status: "sent", AssignedTo: "alice"}, svc.gotFilter)

	var raw []map[string]any
	mustReadJSON(t, rr.Body, &raw)
	require.Len(t, raw, 1)
	assert.Equal(t, "a@x.com", raw[0]["email"])
	assert.Equal(t, "a@x.com", raw[0]["Email"])
	assert.Equal(t, "sent", raw[0]["status"])
}

func TestLeadCreate_LowercaseEmailKeyWins(t *testing.T) {
	svc := &fakeLeadSvc{}
	h := NewLeadHandler(svc)

	body := strings.NewReader(`{"Email":"upper@x.com","email":"lower@x.com","status":"sent","sent_at":"2024-03-01T10:00:00Z"}`)
	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/leads", body))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "lower@x.com", svc.gotCreate.Email)
	assert.Equal(t, "sent", svc.gotCreate.Status)
	require.NotNil(t, svc.gotCreate.SentAt)
	assert.True(t, svc.gotCreate.SentAt.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func TestLeadCreate_ServiceValidation(t *testing.T) {
	h := NewLeadHandler(&fakeLeadSvc{err: domain.ErrMissingField("email")})

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(`{"first_name":"Bob"}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "missing_field", readErrCode(t, rr.Body).Error.Code)
}

func TestLeadCreate_BadWebsite(t *testing.T) {
	h := NewLeadHandler(&fakeLeadSvc{})

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(`{"email":"a@x.com","website":"not a url"}`)))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "website", readErrCode(t, rr.Body).Error.Meta["field"])
}

func TestLeadUpdate_NullClears(t *testing.T) {
	svc := &fakeLeadSvc{}
	h := NewLeadHandler(svc)

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/leads/3", strings.NewReader(`{"sent_at":null,"assigned_to":null}`)), "id", "3")
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, svc.gotUpdate.ClearSentAt)
	require.NotNil(t, svc.gotUpdate.AssignedTo)
	assert.Equal(t, "", *svc.gotUpdate.AssignedTo)
	assert.Nil(t, svc.gotUpdate.Email)
}

// ---- email ----

type fakeEmailSvc struct {
	gotFilter email.ListFilter
	gotCreate email.CreateCmd
	err       error
}

func (f *fakeEmailSvc) List(_ context.Context, flt email.ListFilter) ([]domain.Email, error) {
	f.gotFilter = flt
	return nil, f.err
}

func (f *fakeEmailSvc) Get(_ context.Context, id int64) (domain.Email, error) {
	accID := int64(2)
	return domain.Email{
		ID:        id,
		Address:   "a@x.com",
		AccountID: &accID,
		Account:   &domain.Account{ID: 2, Name: "Acme"},
	}, f.err
}

func (f *fakeEmailSvc) Create(_ context.Context, cmd email.CreateCmd) (domain.Email, error) {
	f.gotCreate = cmd
	return domain.Email{ID: 1, Address: cmd.Address}, f.err
}

func (f *fakeEmailSvc) Update(_ context.Context, cmd email.UpdateCmd) (domain.Email, error) {
	return domain.Email{ID: cmd.ID}, f.err
}

func (f *fakeEmailSvc) Delete(context.Context, int64) error { return f.err }

func TestEmailList_AccountFilter(t *testing.T) {
	svc := &fakeEmailSvc{}
	h := NewEmailHandler(svc)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/emails?accountId=7&search=acme", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, svc.gotFilter.AccountID)
	assert.Equal(t, int64(7), *svc.gotFilter.AccountID)
	assert.Equal(t, "acme", svc.gotFilter.Search)
}

func TestEmailList_BadAccountFilter(t *testing.T) {
	h := NewEmailHandler(&fakeEmailSvc{})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/emails?accountId=x", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid_query", readErrCode(t, rr.Body).Error.Code)
}

func TestEmailGet_NestedAccount(t *testing.T) {
	h := NewEmailHandler(&fakeEmailSvc{})

	rr := httptest.NewRecorder()
	h.Get(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/emails/1", nil), "id", "1"))

	require.Equal(t, http.StatusOK, rr.Code)
	var body dto.EmailView
	mustReadJSON(t, rr.Body, &body)
	require.NotNil(t, body.Account)
	assert.Equal(t, int64(2), *body.Account)
	require.NotNil(t, body.AccountDetails)
	assert.Equal(t, "Acme", body.AccountDetails.Name)
}

func TestEmailCreate_AccountIDAsString(t *testing.T) {
	svc := &fakeEmailSvc{}
	h := NewEmailHandler(svc)

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/emails", strings.NewReader(`{"email":"a@x.com","accountId":"5"}`)))

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, svc.gotCreate.AccountID)
	assert.Equal(t, int64(5), *svc.gotCreate.AccountID)
}

func TestEmailCreate_Conflict(t *testing.T) {
	h := NewEmailHandler(&fakeEmailSvc{err: domain.ErrEmailAlreadyExists()})

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/emails", strings.NewReader(`{"email":"a@x.com"}`)))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

// ---- templates ----

type fakeTemplateSvc struct {
	gotMsgFilter template.MessageFilter
	err          error
}

func (f *fakeTemplateSvc) ListMessages(_ context.Context, flt template.MessageFilter) ([]domain.MessageTemplate, error) {
	f.gotMsgFilter = flt
	return []domain.MessageTemplate{{ID: 1, Content: "hi", Stats: domain.TemplateStats{Used: 3}}}, f.err
}

func (f *fakeTemplateSvc) GetMessage(_ context.Context, id int64) (domain.MessageTemplate, error) {
	return domain.MessageTemplate{ID: id}, f.err
}

func (f *fakeTemplateSvc) ListSubjects(context.Context, template.SubjectFilter) ([]domain.SubjectTemplate, error) {
	return nil, f.err
}

func (f *fakeTemplateSvc) GetSubject(_ context.Context, id int64) (domain.SubjectTemplate, error) {
	return domain.SubjectTemplate{ID: id}, f.err
}

func TestTemplateListMessages(t *testing.T) {
	svc := &fakeTemplateSvc{}
	h := NewTemplateHandler(svc)

	rr := httptest.NewRecorder()
	h.ListMessages(rr, httptest.NewRequest(http.MethodGet, "/message-templates?search=hi&industry=saas", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, template.MessageFilter{Search: "hi", Industry: "saas"}, svc.gotMsgFilter)

	var body []dto.MessageTemplateView
	mustReadJSON(t, rr.Body, &body)
	require.Len(t, body, 1)
	assert.Equal(t, 3, body[0].Used)
	assert.Equal(t, []string{}, body[0].Skills)
}

func TestTemplateGetSubject_NotFound(t *testing.T) {
	h := NewTemplateHandler(&fakeTemplateSvc{err: domain.ErrTemplateNotFound()})

	rr := httptest.NewRecorder()
	h.GetSubject(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/subject-templates/4", nil), "id", "4"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
