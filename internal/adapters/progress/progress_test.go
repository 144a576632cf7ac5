package progress_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/modkit/internal/adapters/progress"
	"go.trai.ch/modkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestFactory_Linear(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		logger.EXPECT().Info("dexing core: 1/3"),
		logger.EXPECT().Info("dexing core: 3/3"),
	)

	p := progress.NewFactory(false, &bytes.Buffer{}, logger).New(3, "dexing core")
	p.Add(1)
	p.Add(2)
	p.Finish()
}

func TestFactory_Interactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	buf := &bytes.Buffer{}

	p := progress.NewFactory(true, buf, mocks.NewMockLogger(ctrl)).New(2, "dexing core")
	assert.NotPanics(t, func() {
		p.Add(1)
		p.Add(1)
		p.Finish()
	})
}
