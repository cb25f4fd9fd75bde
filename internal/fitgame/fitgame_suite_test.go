package fitgame_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFitgame(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Fitgame Suite")
}
