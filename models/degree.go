package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Degree is the canonical form of a proceeding's court degree. Source
// records carry it either as a structured object ({sigla, nome, numero}) or,
// in legacy records, as a bare acronym string; both decode into this one
// shape so downstream code never branches on the raw form.
//
// Numero is a pointer because an explicit 0 in the source must win over the
// acronym parse in Ordinal.
type Degree struct {
	Sigla  string `json:"sigla,omitempty" bson:"sigla,omitempty"`
	Nome   string `json:"nome,omitempty" bson:"nome,omitempty"`
	Numero *int   `json:"numero,omitempty" bson:"numero,omitempty"`
}

var degreeAcronymPattern = regexp.MustCompile(`G(\d+)`)

// Ordinal returns the hierarchical rank of the degree: the structured numero
// when present, else the digits parsed from a G<n> acronym, else 0.
func (d Degree) Ordinal() int {
	if d.Numero != nil {
		return *d.Numero
	}
	if m := degreeAcronymPattern.FindStringSubmatch(d.Sigla); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n
		}
	}
	return 0
}

// UnmarshalJSON accepts both the structured object form and the legacy bare
// acronym string form.
func (d *Degree) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var sigla string
		if err := json.Unmarshal(data, &sigla); err != nil {
			return err
		}
		*d = Degree{Sigla: sigla}
		return nil
	}

	// alias avoids recursing into this method
	type degreeAlias Degree
	var alias degreeAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*d = Degree(alias)
	return nil
}

// UnmarshalBSONValue mirrors UnmarshalJSON for records loaded from mongo.
func (d *Degree) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		var sigla string
		if err := bson.UnmarshalValue(t, data, &sigla); err != nil {
			return err
		}
		*d = Degree{Sigla: sigla}
		return nil
	case bsontype.EmbeddedDocument:
		type degreeAlias Degree
		var alias degreeAlias
		if err := bson.UnmarshalValue(t, data, &alias); err != nil {
			return err
		}
		*d = Degree(alias)
		return nil
	case bsontype.Null:
		*d = Degree{}
		return nil
	default:
		return fmt.Errorf("cannot decode %v into a degree", t)
	}
}

// MovementCode is a movement code that may arrive as a JSON number or a
// string. It is always rendered as a display string.
type MovementCode string

// String returns the display form of the code
func (c MovementCode) String() string { return string(c) }

// UnmarshalJSON accepts a number or a string
func (c *MovementCode) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = MovementCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = MovementCode(n.String())
	return nil
}

// UnmarshalBSONValue accepts the numeric BSON types and strings
func (c *MovementCode) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return err
		}
		*c = MovementCode(s)
		return nil
	case bsontype.Int32:
		var n int32
		if err := bson.UnmarshalValue(t, data, &n); err != nil {
			return err
		}
		*c = MovementCode(strconv.FormatInt(int64(n), 10))
		return nil
	case bsontype.Int64:
		var n int64
		if err := bson.UnmarshalValue(t, data, &n); err != nil {
			return err
		}
		*c = MovementCode(strconv.FormatInt(n, 10))
		return nil
	case bsontype.Double:
		var f float64
		if err := bson.UnmarshalValue(t, data, &f); err != nil {
			return err
		}
		*c = MovementCode(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	case bsontype.Null:
		*c = ""
		return nil
	default:
		return fmt.Errorf("cannot decode %v into a movement code", t)
	}
}
