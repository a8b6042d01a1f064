package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"webroulette/pkg/domain"
	"webroulette/pkg/storage"
	mockstorage "webroulette/pkg/storage/mock"
)

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(ctrl *gomock.Controller, m *mockstorage.MockStorage, fn func(tx *mockstorage.MockAllStorage)) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func testReport() *domain.Report {
	return &domain.Report{
		ID:         domain.ScanID(uuid.New()),
		FinishedAt: time.Unix(1700000000, 0),
		Findings: []domain.Finding{
			{Address: domain.AddressFromOctets(1, 2, 3, 4), Title: "a"},
			{Address: domain.AddressFromOctets(5, 6, 7, 8), Title: "b"},
		},
	}
}

func TestArchiveReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	report := testReport()
	want := []domain.FindingRecord{{ScanID: report.ID}, {ScanID: report.ID}}

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().StoreScan(gomock.Any(), report).Return(nil),
			tx.EXPECT().StoreFindings(gomock.Any(), report.ID, report.FinishedAt,
				report.Findings[0], report.Findings[1]).Return(want, nil),
		)
	})

	got, err := storage.ArchiveReport(context.Background(), st, report)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestArchiveReport_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	report := testReport()

	// error from StoreScan, findings are never stored
	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreScan(gomock.Any(), report).Return(errors.New("insert failed"))
	})
	_, err := storage.ArchiveReport(context.Background(), st, report)
	require.ErrorContains(t, err, "could not store scan")

	// error from StoreFindings
	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreScan(gomock.Any(), report).Return(nil)
		tx.EXPECT().StoreFindings(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("fk violation"))
	})
	_, err = storage.ArchiveReport(context.Background(), st, report)
	require.ErrorContains(t, err, "could not store findings")

	// error from WithTx itself
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(errors.New("could not begin"))
	_, err = storage.ArchiveReport(context.Background(), st, report)
	require.ErrorContains(t, err, "could not archive report")
}
