package mongobject_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/mock/gomock"

	"github.com/mongobject/mongobject"
	mocks "github.com/mongobject/mongobject/mocks/db/mongo"
)

var _ = Describe("Facade Find", func() {
	var (
		ctrl       *gomock.Controller
		mockClient *mocks.MockIClient
		mockDB     *mocks.MockIDatabase
		mockColl   *mocks.MockICollection
		ctx        context.Context
		fac        *mongobject.Facade
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		ctx = context.Background()
		mockClient = mocks.NewMockIClient(ctrl)
		mockDB = mocks.NewMockIDatabase(ctrl)
		mockColl = mocks.NewMockICollection(ctrl)
		mockClient.EXPECT().Database(testDB).Return(mockDB).AnyTimes()
		mockClient.EXPECT().ListDatabaseNames(gomock.Any(), gomock.Any()).Return([]string{testDB}, nil).AnyTimes()
		mockDB.EXPECT().Collection(testColl).Return(mockColl).AnyTimes()
		mockDB.EXPECT().ListCollectionNames(gomock.Any(), gomock.Any()).Return([]string{testColl}, nil).AnyTimes()
		fac = mongobject.NewWithClient(mockClient, testDB, testColl)
	})

	Describe("FindAll", func() {
		It("flattens every document on its identifier", func() {
			id1 := bson.NewObjectID()
			id2 := bson.NewObjectID()
			cur := cursorFromDocs(
				bson.D{{Key: "_id", Value: id1}, {Key: "a", Value: 1}},
				bson.D{{Key: "_id", Value: id2}, {Key: "a", Value: 2}},
			)
			mockColl.EXPECT().Find(ctx, gomock.Any(), gomock.Any()).Return(cur, nil)
			res, err := fac.Find(ctx, mongobject.Query{Filter: bson.M{}}, mongobject.FindAll{})
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(HaveLen(2))
			Expect(res[id1]).To(Equal(bson.M{"a": int32(1)}))
			Expect(res[id2]).To(Equal(bson.M{"a": int32(2)}))
		})
		It("skips documents without an identifier", func() {
			id := bson.NewObjectID()
			cur := cursorFromDocs(
				bson.D{{Key: "_id", Value: id}, {Key: "a", Value: 1}},
				bson.D{{Key: "a", Value: 2}},
			)
			mockColl.EXPECT().Find(ctx, gomock.Any(), gomock.Any()).Return(cur, nil)
			res, err := fac.Find(ctx, mongobject.Query{}, mongobject.FindAll{})
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(HaveLen(1))
			Expect(res).To(HaveKey(id))
		})
		It("returns an empty set on an empty match", func() {
			cur := cursorFromDocs()
			mockColl.EXPECT().Find(ctx, gomock.Any(), gomock.Any()).Return(cur, nil)
			res, err := fac.Find(ctx, mongobject.Query{}, mongobject.FindAll{})
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(BeEmpty())
		})
	})

	Describe("FindFirst", func() {
		It("returns the single matching document", func() {
			id := bson.NewObjectID()
			sr := singleResultFromDoc(bson.D{{Key: "_id", Value: id}, {Key: "a", Value: 1}})
			mockColl.EXPECT().FindOne(ctx, gomock.Any(), gomock.Any()).Return(sr)
			res, err := fac.Find(ctx, mongobject.Query{Filter: bson.M{"a": 1}}, mongobject.FindFirst{})
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(HaveLen(1))
			Expect(res[id]).To(Equal(bson.M{"a": int32(1)}))
		})
		It("returns an empty set when nothing matched", func() {
			mockColl.EXPECT().FindOne(ctx, gomock.Any(), gomock.Any()).Return(emptySingleResult())
			res, err := fac.Find(ctx, mongobject.Query{}, mongobject.FindFirst{})
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(BeEmpty())
		})
	})

	Describe("FindFirstAndDelete", func() {
		It("returns the deleted document", func() {
			id := bson.NewObjectID()
			sr := singleResultFromDoc(bson.D{{Key: "_id", Value: id}, {Key: "a", Value: 1}})
			mockColl.EXPECT().FindOneAndDelete(ctx, gomock.Any(), gomock.Any()).Return(sr)
			res, err := fac.Find(ctx, mongobject.Query{Filter: bson.M{"a": 1}}, mongobject.FindFirstAndDelete{})
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(HaveKey(id))
		})
	})

	Describe("FindFirstAndReplace", func() {
		It("returns the replaced document", func() {
			id := bson.NewObjectID()
			sr := singleResultFromDoc(bson.D{{Key: "_id", Value: id}, {Key: "b", Value: 2}})
			mockColl.EXPECT().FindOneAndReplace(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(sr)
			mode := mongobject.FindFirstAndReplace{Replacement: bson.M{"b": 2}}
			res, err := fac.Find(ctx, mongobject.Query{Filter: bson.M{"a": 1}}, mode)
			Expect(err).ToNot(HaveOccurred())
			Expect(res[id]).To(Equal(bson.M{"b": int32(2)}))
		})
		It("tolerates a nil replacement", func() {
			mockColl.EXPECT().FindOneAndReplace(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(emptySingleResult())
			res, err := fac.Find(ctx, mongobject.Query{}, mongobject.FindFirstAndReplace{})
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(BeEmpty())
		})
	})

	Describe("FindFirstAndUpdate", func() {
		It("returns the updated document", func() {
			id := bson.NewObjectID()
			sr := singleResultFromDoc(bson.D{{Key: "_id", Value: id}, {Key: "a", Value: 3}})
			mockColl.EXPECT().FindOneAndUpdate(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(sr)
			mode := mongobject.FindFirstAndUpdate{Update: bson.M{"$set": bson.M{"a": 3}}, ReturnBefore: false}
			res, err := fac.Find(ctx, mongobject.Query{Filter: bson.M{"a": 1}}, mode)
			Expect(err).ToNot(HaveOccurred())
			Expect(res[id]).To(Equal(bson.M{"a": int32(3)}))
		})
	})

	It("returns an empty set on a nil mode", func() {
		res, err := fac.Find(ctx, mongobject.Query{}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(BeEmpty())
	})
})
