package mongo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mongobject/mongobject/internal/db/mongo"
)

var _ = Describe("BuildURI", func() {
	type testCase struct {
		opts     mongo.ConnOptions
		expected string
	}
	DescribeTable("", func(tc testCase) {
		Expect(mongo.BuildURI(tc.opts)).To(Equal(tc.expected))
	},
		Entry("should keep a mongodb URI",
			testCase{opts: mongo.ConnOptions{URI: "mongodb://db.example.com:27018"}, expected: "mongodb://db.example.com:27018"}),
		Entry("should keep a mongodb+srv URI",
			testCase{opts: mongo.ConnOptions{URI: "mongodb+srv://cluster0.example.net"}, expected: "mongodb+srv://cluster0.example.net"}),
		Entry("should prefer the URI over host and port",
			testCase{opts: mongo.ConnOptions{URI: "mongodb://db.example.com", Host: "other", Port: 27017}, expected: "mongodb://db.example.com"}),
		Entry("should combine host and port",
			testCase{opts: mongo.ConnOptions{Host: "db.example.com", Port: 27018}, expected: "mongodb://db.example.com:27018"}),
		Entry("should accept a bare host",
			testCase{opts: mongo.ConnOptions{Host: "db.example.com"}, expected: "mongodb://db.example.com"}),
		Entry("should treat a scheme-less URI as a host",
			testCase{opts: mongo.ConnOptions{URI: "db.example.com:27018"}, expected: "mongodb://db.example.com:27018"}),
		Entry("should fall back to the local default",
			testCase{opts: mongo.ConnOptions{}, expected: "mongodb://localhost:27017"}),
	)
})
