package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDegreeLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected DegreeLevel
	}{
		{"bachelor", DegreeBachelor},
		{"Master", DegreeMaster},
		{" doctorate ", DegreeDoctorate},
		{"associate", DegreeAssociate},
		{"none", DegreeNone},
		{"garbage", DegreeNone},
		{"", DegreeNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseDegreeLevel(tt.input), "input %q", tt.input)
	}
}

func TestDegreeLevel_Ordering(t *testing.T) {
	// The ordinal ordering is what makes "highest degree wins" work.
	assert.True(t, DegreeNone < DegreeAssociate)
	assert.True(t, DegreeAssociate < DegreeBachelor)
	assert.True(t, DegreeBachelor < DegreeMaster)
	assert.True(t, DegreeMaster < DegreeDoctorate)
}

func TestDegreeLevel_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(DegreeMaster)
	require.NoError(t, err)
	assert.Equal(t, `"master"`, string(data))

	var level DegreeLevel
	require.NoError(t, json.Unmarshal([]byte(`"doctorate"`), &level))
	assert.Equal(t, DegreeDoctorate, level)
}

func TestEmptyResult(t *testing.T) {
	result := EmptyResult(MethodRuleBased)

	assert.NotNil(t, result.Keywords)
	assert.NotNil(t, result.MustHave)
	assert.NotNil(t, result.NiceToHave)
	assert.NotNil(t, result.Certifications)
	assert.Empty(t, result.Keywords)
	assert.Nil(t, result.YearsRequired)
	assert.Nil(t, result.DegreeRequired)
	assert.Equal(t, MethodRuleBased, result.Method)

	// JSON form should expose empty arrays, not nulls.
	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"keywords":[]`)
	assert.Contains(t, string(data), `"must_have":[]`)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryLanguage))
	assert.True(t, ValidCategory(CategoryOther))
	assert.False(t, ValidCategory(Category("backend")))
	assert.False(t, ValidCategory(Category("")))
}

func TestValidRoleFamilyAndSeniority(t *testing.T) {
	assert.True(t, ValidRoleFamily(RoleTesting))
	assert.True(t, ValidRoleFamily(RoleBusinessAnalyst))
	assert.False(t, ValidRoleFamily(RoleFamily("backend")))

	assert.True(t, ValidSeniority(SeniorityIntermediate))
	assert.False(t, ValidSeniority(Seniority("principal")))
}

func TestHasTerm(t *testing.T) {
	result := EmptyResult(MethodRuleBased)
	result.Keywords = append(result.Keywords, Keyword{Term: "Python", Category: CategoryLanguage, Score: 1.3, Count: 1})

	assert.True(t, result.HasTerm("Python"))
	assert.False(t, result.HasTerm("python"))
	assert.False(t, result.HasTerm("Go"))
}
