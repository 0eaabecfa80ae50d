package errs

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IMongoErr interface {
	error
}
type baseMongoErr struct {
	message string
	txt     string
}

func (e *baseMongoErr) Error() string {
	if e.txt != "" {
		return fmt.Sprintf("%s: %s", e.message, e.txt)
	} else {
		return e.message
	}
}

type MongoClientErr struct{ *baseMongoErr }
type MongoOpErr struct{ *baseMongoErr }
type MongoDecodeErr struct{ *baseMongoErr }
type MongoNotFoundErr struct{ *baseMongoErr }

func NewMongoClientErr(e error) IMongoErr {
	return MongoClientErr{&baseMongoErr{message: "error getting mongo client", txt: e.Error()}}
}
func NewMongoOpErr(e error) IMongoErr {
	return MongoOpErr{&baseMongoErr{message: "error performing mongo action", txt: e.Error()}}
}
func NewMongoDecodeErr(e error) IMongoErr {
	return MongoDecodeErr{&baseMongoErr{message: "error decoding mongo document", txt: e.Error()}}
}
func NewMongoNotFoundErr(q bson.D) IMongoErr {
	return MongoNotFoundErr{&baseMongoErr{message: "requested object not found", txt: fmt.Sprintf("filter: %+v", q)}}
}
