package store_test

import (
	"context"
	"fmt"

	mMongoX "github.com/chenmingyong0423/go-mongox/v2/mock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/mock/gomock"

	"github.com/mongobject/mongobject"
	"github.com/mongobject/mongobject/internal/errs"
	mStore "github.com/mongobject/mongobject/mocks/store"
	"github.com/mongobject/mongobject/store"
)

type testDoc struct {
	store.BaseDoc `bson:",inline"`
	Name          string `bson:"name"`
}

var _ = Describe("DataStore", func() {
	var (
		ctrl           *gomock.Controller
		mockCollection *mStore.MockICollection[testDoc]
		mockCreator    *mMongoX.MockICreator[testDoc]
		mockFinder     *mMongoX.MockIFinder[testDoc]
		mockDeleter    *mMongoX.MockIDeleter[testDoc]
		mockUpdater    *mMongoX.MockIUpdater[testDoc]
		testContext    context.Context
		ds             *store.DataStore[testDoc]
		testQ          bson.D
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		testContext = context.Background()
		testQ = bson.D{{Key: "name", Value: "x"}}
		mockCreator = mMongoX.NewMockICreator[testDoc](ctrl)
		mockFinder = mMongoX.NewMockIFinder[testDoc](ctrl)
		mockDeleter = mMongoX.NewMockIDeleter[testDoc](ctrl)
		mockUpdater = mMongoX.NewMockIUpdater[testDoc](ctrl)
		mockCollection = mStore.NewMockICollection[testDoc](ctrl)
		mockCollection.EXPECT().Creator().Return(mockCreator).AnyTimes()
		mockCollection.EXPECT().Finder().Return(mockFinder).AnyTimes()
		mockCollection.EXPECT().Deleter().Return(mockDeleter).AnyTimes()
		mockCollection.EXPECT().Updater().Return(mockUpdater).AnyTimes()
		ds = store.NewDataStoreWithCollection[testDoc](mockCollection)
	})

	Describe("NewDataStore", func() {
		It("rejects a facade without an active connection", func() {
			fac := mongobject.NewWithClient(nil, "db", "coll")
			_, err := store.NewDataStore[testDoc](fac)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Create", func() {
		type testCase struct {
			expectDbErr bool
		}
		DescribeTable("", func(tc testCase) {
			id := bson.NewObjectID()
			mockCreator.EXPECT().InsertOne(testContext, gomock.Any()).DoAndReturn(func(ctx context.Context, doc any, _ ...any) (*mongo.InsertOneResult, error) {
				if tc.expectDbErr {
					return nil, fmt.Errorf("mock insert error")
				}
				return &mongo.InsertOneResult{InsertedID: id}, nil
			})
			doc, err := ds.Create(testContext, &testDoc{Name: "x"})
			if tc.expectDbErr {
				Expect(err).To(HaveOccurred())
				Expect(errs.IsErr(err, errs.MongoOpErr{})).To(BeTrue())
			} else {
				Expect(err).ToNot(HaveOccurred())
				Expect(doc.GetID()).To(Equal(id))
			}
		},
			Entry("should create a document and bind its identifier", testCase{}),
			Entry("should not create a document with insert error", testCase{expectDbErr: true}),
		)
	})

	Describe("List", func() {
		It("returns every matching document", func() {
			docs := []*testDoc{{Name: "a"}, {Name: "b"}}
			mockFinder.EXPECT().Filter(gomock.AssignableToTypeOf(testQ)).Return(mockFinder)
			mockFinder.EXPECT().Find(testContext).Return(docs, nil)
			res, err := ds.List(testContext, testQ)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal(docs))
		})
		It("defaults a nil filter to an empty one", func() {
			mockFinder.EXPECT().Filter(gomock.AssignableToTypeOf(bson.D{})).Return(mockFinder)
			mockFinder.EXPECT().Find(testContext).Return([]*testDoc{}, nil)
			_, err := ds.List(testContext, nil)
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Describe("Find", func() {
		It("returns the first matching document", func() {
			doc := &testDoc{Name: "a"}
			mockFinder.EXPECT().Filter(gomock.AssignableToTypeOf(testQ)).Return(mockFinder)
			mockFinder.EXPECT().FindOne(testContext).Return(doc, nil)
			res, err := ds.Find(testContext, testQ)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal(doc))
		})
		It("wraps driver errors", func() {
			mockFinder.EXPECT().Filter(gomock.AssignableToTypeOf(testQ)).Return(mockFinder)
			mockFinder.EXPECT().FindOne(testContext).Return(nil, fmt.Errorf("mock findOne error"))
			_, err := ds.Find(testContext, testQ)
			Expect(errs.IsErr(err, errs.MongoOpErr{})).To(BeTrue())
		})
	})

	Describe("Update", func() {
		type testCase struct {
			matched   int64
			dbErr     bool
			expectErr bool
			notFound  bool
		}
		DescribeTable("", func(tc testCase) {
			updates := bson.D{{Key: "$set", Value: bson.D{{Key: "name", Value: "y"}}}}
			mockUpdater.EXPECT().Filter(gomock.AssignableToTypeOf(testQ)).Return(mockUpdater)
			mockUpdater.EXPECT().Updates(gomock.Any()).Return(mockUpdater)
			mockUpdater.EXPECT().UpdateOne(testContext).DoAndReturn(func(ctx context.Context, _ ...any) (*mongo.UpdateResult, error) {
				if tc.dbErr {
					return nil, fmt.Errorf("mock update error")
				}
				return &mongo.UpdateResult{MatchedCount: tc.matched, ModifiedCount: tc.matched}, nil
			})
			err := ds.Update(testContext, testQ, updates)
			if tc.expectErr {
				Expect(err).To(HaveOccurred())
				if tc.notFound {
					Expect(errs.IsErr(err, errs.MongoNotFoundErr{})).To(BeTrue())
				}
			} else {
				Expect(err).ToNot(HaveOccurred())
			}
		},
			Entry("should update a matching document", testCase{matched: 1}),
			Entry("should report a missing document", testCase{matched: 0, expectErr: true, notFound: true}),
			Entry("should wrap update errors", testCase{dbErr: true, expectErr: true}),
		)
	})

	Describe("Delete", func() {
		type testCase struct {
			deleted   int64
			dbErr     bool
			expectErr bool
		}
		DescribeTable("", func(tc testCase) {
			mockDeleter.EXPECT().Filter(gomock.AssignableToTypeOf(testQ)).Return(mockDeleter)
			mockDeleter.EXPECT().DeleteOne(testContext).DoAndReturn(func(ctx context.Context, _ ...any) (*mongo.DeleteResult, error) {
				if tc.dbErr {
					return nil, fmt.Errorf("mock delete error")
				}
				return &mongo.DeleteResult{DeletedCount: tc.deleted}, nil
			})
			err := ds.Delete(testContext, testQ)
			if tc.expectErr {
				Expect(err).To(HaveOccurred())
			} else {
				Expect(err).ToNot(HaveOccurred())
			}
		},
			Entry("should delete a matching document", testCase{deleted: 1}),
			Entry("should report a missing document", testCase{deleted: 0, expectErr: true}),
			Entry("should wrap delete errors", testCase{dbErr: true, expectErr: true}),
		)
	})

	Describe("Count", func() {
		It("returns the matching document count", func() {
			mockFinder.EXPECT().Filter(gomock.AssignableToTypeOf(testQ)).Return(mockFinder)
			mockFinder.EXPECT().Count(testContext).Return(int64(3), nil)
			n, err := ds.Count(testContext, testQ)
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(int64(3)))
		})
	})
})
