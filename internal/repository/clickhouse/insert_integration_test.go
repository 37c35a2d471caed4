//go:build integration

package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

func (s *RepositorySuite) TestPing() {
	s.Require().NoError(s.repo.Ping(s.testCtx))
}

func (s *RepositorySuite) TestInsertBlocks() {
	now := time.Now().UTC().Truncate(time.Second)
	blocks := []model.ArchivedBlock{
		{Hash: "0xa", Number: 1, Timestamp: now, GasUsed: 1, GasLimit: 2, ParentHash: "0x0", TxCount: 1, ReceivedAt: now},
		{Hash: "0xb", Number: 2, Timestamp: now.Add(time.Second), ParentHash: "0xa", ReceivedAt: now},
	}

	s.metrics.EXPECT().Observe("insert_blocks", 2, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, blocks))
	s.Equal(uint64(2), s.count("SELECT count() FROM explorer_blocks"))
}

func (s *RepositorySuite) TestInsertBlocksDeduplicatesByHash() {
	now := time.Now().UTC().Truncate(time.Second)
	block := model.ArchivedBlock{Hash: "0xa", Number: 7, Timestamp: now, ReceivedAt: now}

	s.metrics.EXPECT().Observe("insert_blocks", 1, gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, []model.ArchivedBlock{block}))
	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, []model.ArchivedBlock{block}))

	s.Equal(uint64(1), s.count("SELECT count() FROM explorer_blocks FINAL WHERE number = ?", uint64(7)))
}

func (s *RepositorySuite) TestInsertTransactions() {
	to := "0xbob"
	txs := []model.ArchivedTransaction{
		{Hash: "0xt1", BlockHash: "0xa", BlockNumber: 1, From: "0xalice", To: &to, Value: "1", Input: "0x", Type: "0x2"},
		{Hash: "0xt2", BlockHash: "0xa", BlockNumber: 1, TxIndex: 1, From: "0xalice", Value: "0", Input: "0x6080", Type: "0x0", Method: "0x6080"},
	}

	s.metrics.EXPECT().Observe("insert_transactions", 2, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, txs))
	s.Equal(uint64(2), s.count("SELECT count() FROM explorer_transactions"))
	s.Equal(uint64(1), s.count("SELECT count() FROM explorer_transactions WHERE to_address IS NULL"))
}
