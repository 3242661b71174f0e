package validation_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/localnerve/realtydash/internal/models"
	"github.com/localnerve/realtydash/internal/validation"
)

func fieldsOf(v validation.Violations) []string {
	fields := make([]string, 0, len(v))
	for _, fe := range v {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestValidateInsertPropertyValid(t *testing.T) {
	c := qt.New(t)

	body := []byte(`{
		"address": "456 Oak Ave",
		"price": 525000,
		"bedrooms": 4,
		"bathrooms": "2.5",
		"sqft": 2400,
		"marketPosition": "Above Average",
		"imageUrl": "https://example.com/oak.jpg"
	}`)

	insert, v := validation.ValidateInsertProperty(body)
	c.Assert(v.Empty(), qt.IsTrue, qt.Commentf("violations: %v", v))
	c.Assert(insert.Address, qt.Equals, "456 Oak Ave")
	c.Assert(insert.Bathrooms.Float64(), qt.Equals, 2.5)

	// Defaults applied for omitted optional fields
	c.Assert(insert.Status, qt.Equals, models.PropertyStatusActive)
	c.Assert(insert.DaysOnMarket, qt.Equals, 0)
	c.Assert(*insert.ImageURL, qt.Equals, "https://example.com/oak.jpg")
}

func TestValidateInsertPropertyBathroomsAsNumber(t *testing.T) {
	c := qt.New(t)

	body := []byte(`{
		"address": "456 Oak Ave",
		"price": 525000,
		"bedrooms": 4,
		"bathrooms": 2.5,
		"sqft": 2400,
		"marketPosition": "Market Average"
	}`)

	insert, v := validation.ValidateInsertProperty(body)
	c.Assert(v.Empty(), qt.IsTrue, qt.Commentf("violations: %v", v))
	c.Assert(insert.Bathrooms.Float64(), qt.Equals, 2.5)
}

func TestValidateInsertPropertyMissingRequired(t *testing.T) {
	c := qt.New(t)

	body := []byte(`{
		"price": 525000,
		"bedrooms": 4,
		"bathrooms": 2.5,
		"sqft": 2400,
		"marketPosition": "Market Average"
	}`)

	_, v := validation.ValidateInsertProperty(body)
	c.Assert(v.Empty(), qt.IsFalse)
	c.Assert(fieldsOf(v), qt.Contains, "address")
}

func TestValidateInsertPropertyRejects(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "unknown field",
			body:  `{"address":"a","price":1000,"bedrooms":1,"bathrooms":1.0,"sqft":100,"marketPosition":"Market Average","pricePerSqft":10}`,
			field: "pricePerSqft",
		},
		{
			name:  "bad status label",
			body:  `{"address":"a","price":1000,"bedrooms":1,"bathrooms":1.0,"sqft":100,"marketPosition":"Market Average","status":"archived"}`,
			field: "status",
		},
		{
			name:  "bad market position",
			body:  `{"address":"a","price":1000,"bedrooms":1,"bathrooms":1.0,"sqft":100,"marketPosition":"Way Above"}`,
			field: "marketPosition",
		},
		{
			name:  "zero sqft",
			body:  `{"address":"a","price":1000,"bedrooms":1,"bathrooms":1.0,"sqft":0,"marketPosition":"Market Average"}`,
			field: "sqft",
		},
		{
			name:  "fractional bedrooms",
			body:  `{"address":"a","price":1000,"bedrooms":1.5,"bathrooms":1.0,"sqft":100,"marketPosition":"Market Average"}`,
			field: "bedrooms",
		},
		{
			name:  "string price",
			body:  `{"address":"a","price":"1000","bedrooms":1,"bathrooms":1.0,"sqft":100,"marketPosition":"Market Average"}`,
			field: "price",
		},
		{
			name:  "null address",
			body:  `{"address":null,"price":1000,"bedrooms":1,"bathrooms":1.0,"sqft":100,"marketPosition":"Market Average"}`,
			field: "address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			_, v := validation.ValidateInsertProperty([]byte(tt.body))
			c.Assert(v.Empty(), qt.IsFalse)
			c.Assert(fieldsOf(v), qt.Contains, tt.field)
		})
	}
}

func TestValidateInsertPropertyNotAnObject(t *testing.T) {
	c := qt.New(t)

	_, v := validation.ValidateInsertProperty([]byte(`[1,2,3]`))
	c.Assert(v.Empty(), qt.IsFalse)

	_, v = validation.ValidateInsertProperty([]byte(`not json`))
	c.Assert(v.Empty(), qt.IsFalse)
}

func TestValidateInsertTeamActivity(t *testing.T) {
	c := qt.New(t)

	insert, v := validation.ValidateInsertTeamActivity([]byte(
		`{"userId":2,"action":"listed","description":"Listed 456 Oak Ave","relatedProperty":"456 Oak Ave"}`,
	))
	c.Assert(v.Empty(), qt.IsTrue, qt.Commentf("violations: %v", v))
	c.Assert(insert.UserID, qt.Equals, 2)
	c.Assert(*insert.RelatedProperty, qt.Equals, "456 Oak Ave")

	// userId existence is not a write-time concern
	_, v = validation.ValidateInsertTeamActivity([]byte(
		`{"userId":999,"action":"listed","description":"x"}`,
	))
	c.Assert(v.Empty(), qt.IsTrue)

	_, v = validation.ValidateInsertTeamActivity([]byte(`{"action":"listed"}`))
	c.Assert(fieldsOf(v), qt.Contains, "userId")
	c.Assert(fieldsOf(v), qt.Contains, "description")
}

func TestValidateInsertDocument(t *testing.T) {
	c := qt.New(t)

	insert, v := validation.ValidateInsertDocument([]byte(
		`{"name":"Q2 Report","type":"pdf","sharedBy":1}`,
	))
	c.Assert(v.Empty(), qt.IsTrue, qt.Commentf("violations: %v", v))
	c.Assert(insert.FileURL, qt.IsNil)

	_, v = validation.ValidateInsertDocument([]byte(
		`{"name":"Q2 Report","type":"powerpoint","sharedBy":1}`,
	))
	c.Assert(fieldsOf(v), qt.Contains, "type")
}

func TestValidateInsertComment(t *testing.T) {
	c := qt.New(t)

	insert, v := validation.ValidateInsertComment([]byte(`{"userId":1,"content":"nice find"}`))
	c.Assert(v.Empty(), qt.IsTrue)
	c.Assert(insert.Content, qt.Equals, "nice find")

	_, v = validation.ValidateInsertComment([]byte(`{"userId":1}`))
	c.Assert(fieldsOf(v), qt.Contains, "content")

	_, v = validation.ValidateInsertComment([]byte(`{"userId":1,"content":"x","extra":true}`))
	c.Assert(fieldsOf(v), qt.Contains, "extra")
}
