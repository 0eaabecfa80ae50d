package store

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mongobject/mongobject/internal/errs"
)

// IMongoDoc is implemented by documents stored through a DataStore. Embed
// BaseDoc to satisfy it.
type IMongoDoc interface {
	GetID() bson.ObjectID
	SetID(bson.ObjectID)
	GetIDStr() string
	SetIDStr(string) error
}

// BaseDoc carries the document identifier.
type BaseDoc struct {
	ID bson.ObjectID `bson:"_id,omitempty"`
}

func (d *BaseDoc) GetID() bson.ObjectID {
	return d.ID
}
func (d *BaseDoc) GetIDStr() string {
	return d.ID.Hex()
}
func (d *BaseDoc) SetID(id bson.ObjectID) {
	d.ID = id
}
func (d *BaseDoc) SetIDStr(id string) error {
	idObj, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewMongoDecodeErr(err)
	}
	d.ID = idObj
	return nil
}

var _ IMongoDoc = (*BaseDoc)(nil)
