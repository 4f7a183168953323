package legalheirs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/crud/crudtest"
	"github.com/shareregistry/backoffice/internal/platform/httpx"
)

func TestMinorNeedsGuardian(t *testing.T) {
	v := crud.NewValidator()

	adult := Payload{ProjectID: 1, ClaimantName: "Meera Shah"}
	assert.NoError(t, crud.ValidateStruct(v, adult))

	minor := Payload{ProjectID: 1, ClaimantName: "Kabir Shah", IsMinor: true}
	err := crud.ValidateStruct(v, minor)
	require.Error(t, err)
	var verr *httpx.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, httpx.FieldError{Field: "guardianName", Message: "is required"}, verr.Fields[0])

	minor.GuardianName = "Meera Shah"
	assert.NoError(t, crud.ValidateStruct(v, minor))
}

func TestIdentityFormats(t *testing.T) {
	v := crud.NewValidator()
	p := Payload{ProjectID: 1, ClaimantName: "A", ClaimantPan: "abcde1234f", ClaimantAadhaar: "1234", Email: "nope"}
	err := crud.ValidateStruct(v, p)
	var verr *httpx.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "must be a valid PAN (ABCDE1234F)", fields["claimantPan"])
	assert.Equal(t, "must be exactly 12 characters", fields["claimantAadhaar"])
	assert.Equal(t, "must be a valid email address", fields["email"])

	p = Payload{ProjectID: 1, ClaimantName: "A", ClaimantPan: "ABCDE1234F", ClaimantAadhaar: "123456789012", Email: "a@b.in"}
	assert.NoError(t, crud.ValidateStruct(v, p))
}

func TestBlankNamesRejectedAfterTrim(t *testing.T) {
	ctx := context.Background()
	store := crudtest.NewMemory(crudtest.Options[LegalHeirDetail]{
		SetID: func(l *LegalHeirDetail, id int64) { l.ID = id },
	})
	noneMissing := func(context.Context, []int64) ([]int64, error) { return nil, nil }
	svc := crud.NewService(store, Definition(noneMissing))

	_, err := svc.Create(ctx, Payload{ProjectID: 1, ClaimantName: "   ", IsMinor: true, GuardianName: "  "})
	require.Error(t, err)
	var verr *httpx.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"claimantName", "guardianName"}, fields)
	assert.Zero(t, store.Len())

	created, err := svc.Create(ctx, Payload{ProjectID: 1, ClaimantName: "  Kabir Shah ", IsMinor: true, GuardianName: " Meera Shah"})
	require.NoError(t, err)
	assert.Equal(t, "Kabir Shah", created.ClaimantName)
	assert.Equal(t, "Meera Shah", created.GuardianName)
}
