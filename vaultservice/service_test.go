package vaultservice

import (
	"sync"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/vaultlayer/vault-engine/ledger"
	"github.com/vaultlayer/vault-engine/logger"
	"github.com/vaultlayer/vault-engine/metrics/indicators/vaultops"
	"github.com/vaultlayer/vault-engine/schema/vaultengine"
	"github.com/vaultlayer/vault-engine/vault"
)

const denom = "uusdc"

type ServiceTestSuite struct {
	suite.Suite
	service  *Service
	ledger   *ledger.InMemory
	registry *prometheus.Registry
}

func (suite *ServiceTestSuite) SetupTest() {
	suite.ledger = ledger.NewInMemory(denom)
	suite.registry = prometheus.NewRegistry()
	ind := vaultops.NewPromIndicators("testvault", suite.registry)

	service, err := New(vault.DefaultConfig(6, 6), denom, suite.ledger, logger.MockLogger{}, ind)
	suite.Require().NoError(err)
	suite.service = service
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (suite *ServiceTestSuite) TestDepositFlow() {
	shares, err := suite.service.Deposit("alice", math.NewInt(1000))
	suite.Require().NoError(err)
	suite.Equal(math.NewInt(1000), shares)

	suite.Equal(math.NewInt(1000), suite.service.TotalAssets())
	suite.Equal(math.NewInt(1000), suite.service.TotalShares())
	suite.Equal(math.NewInt(1000), suite.ledger.ShareBalance("alice"))
	suite.Equal(sdk.NewCoin(denom, math.NewInt(1000)), suite.ledger.Custody())

	count, err := testutil.GatherAndCount(suite.registry, "vaultlayer_vault_operations_total")
	suite.NoError(err)
	suite.Equal(1, count)
}

func (suite *ServiceTestSuite) TestFullCycle() {
	_, err := suite.service.Deposit("alice", math.NewInt(1000))
	suite.Require().NoError(err)

	assets, err := suite.service.Redeem("alice", math.NewInt(1000))
	suite.Require().NoError(err)
	suite.Equal(math.NewInt(1000), assets)

	suite.True(suite.service.TotalAssets().IsZero())
	suite.True(suite.service.TotalShares().IsZero())
	suite.True(suite.ledger.ShareBalance("alice").IsZero())
	suite.True(suite.ledger.Custody().Amount.IsZero())
}

func (suite *ServiceTestSuite) TestMintAndWithdraw() {
	cost, err := suite.service.Mint("alice", math.NewInt(500))
	suite.Require().NoError(err)
	suite.Equal(math.NewInt(500), cost)
	suite.Equal(math.NewInt(500), suite.ledger.ShareBalance("alice"))

	burned, err := suite.service.Withdraw("alice", math.NewInt(200))
	suite.Require().NoError(err)
	suite.Equal(math.NewInt(200), burned)
	suite.Equal(math.NewInt(300), suite.ledger.ShareBalance("alice"))
	suite.Equal(math.NewInt(300), suite.service.TotalAssets())
}

func (suite *ServiceTestSuite) TestWithdrawWithoutEntitlementRollsBack() {
	_, err := suite.service.Deposit("alice", math.NewInt(1000))
	suite.Require().NoError(err)

	_, err = suite.service.Withdraw("bob", math.NewInt(100))
	suite.Require().ErrorIs(err, vault.ErrInsufficientShares)

	// The engine commit was unwound along with the failed ledger leg.
	suite.Equal(math.NewInt(1000), suite.service.TotalAssets())
	suite.Equal(math.NewInt(1000), suite.service.TotalShares())
	suite.Equal(sdk.NewCoin(denom, math.NewInt(1000)), suite.ledger.Custody())
	suite.True(suite.ledger.ShareBalance("bob").IsZero())
}

func (suite *ServiceTestSuite) TestDonationDoesNotMintShares() {
	_, err := suite.service.Deposit("alice", math.NewInt(1000))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Donate("mallory", math.NewInt(500)))
	suite.Equal(math.NewInt(1500), suite.service.TotalAssets())
	suite.Equal(math.NewInt(1000), suite.service.TotalShares())
	suite.True(suite.ledger.ShareBalance("mallory").IsZero())

	suite.ErrorIs(suite.service.Donate("mallory", math.NewInt(-1)), vault.ErrInvalidAmount)
}

func (suite *ServiceTestSuite) TestHandleExecute() {
	resp, err := suite.service.HandleExecute("alice", vaultengine.ExecuteMsg{
		Deposit: &vaultengine.AmountMsg{Amount: "1000"},
	})
	suite.Require().NoError(err)
	suite.Equal("1000", resp.Amount)

	resp, err = suite.service.HandleExecute("alice", vaultengine.ExecuteMsg{
		Redeem: &vaultengine.AmountMsg{Amount: "400"},
	})
	suite.Require().NoError(err)
	suite.Equal("400", resp.Amount)

	_, err = suite.service.HandleExecute("alice", vaultengine.ExecuteMsg{})
	suite.ErrorIs(err, ErrUnknownMsg)

	_, err = suite.service.HandleExecute("alice", vaultengine.ExecuteMsg{
		Deposit: &vaultengine.AmountMsg{Amount: "not-a-number"},
	})
	suite.ErrorIs(err, vault.ErrInvalidAmount)
}

func (suite *ServiceTestSuite) TestHandleQuery() {
	_, err := suite.service.Deposit("alice", math.NewInt(1000))
	suite.Require().NoError(err)

	out, err := suite.service.HandleQuery(vaultengine.QueryMsg{TotalAssets: &vaultengine.TotalAssets{}})
	suite.Require().NoError(err)
	suite.Equal(`"1000"`, string(out))

	out, err = suite.service.HandleQuery(vaultengine.QueryMsg{
		PreviewDeposit: &vaultengine.PreviewDeposit{Assets: "123"},
	})
	suite.Require().NoError(err)
	suite.Equal(`"123"`, string(out))

	_, err = suite.service.HandleQuery(vaultengine.QueryMsg{})
	suite.ErrorIs(err, ErrUnknownMsg)
}

func (suite *ServiceTestSuite) TestConvertQueriesReportZero() {
	// Inflate the share price so a dust conversion rounds to nothing.
	_, err := suite.service.Deposit("alice", math.NewInt(1))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.Donate("mallory", math.NewInt(1000)))

	out, err := suite.service.HandleQuery(vaultengine.QueryMsg{
		ConvertToShares: &vaultengine.ConvertToShares{Assets: "5"},
	})
	suite.Require().NoError(err)
	suite.Equal(`"0"`, string(out))

	// The strict preview variant surfaces the typed failure instead.
	_, err = suite.service.HandleQuery(vaultengine.QueryMsg{
		PreviewDeposit: &vaultengine.PreviewDeposit{Assets: "5"},
	})
	suite.ErrorIs(err, vault.ErrZeroQuantity)
}

func (suite *ServiceTestSuite) TestConcurrentPreviewsAndMutations() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = suite.service.Deposit("alice", math.NewInt(100))
		}()
		go func() {
			defer wg.Done()
			_, _ = suite.service.PreviewDeposit(math.NewInt(100))
			_ = suite.service.TotalShares()
		}()
	}
	wg.Wait()

	suite.Equal(math.NewInt(800), suite.service.TotalAssets())
	suite.Equal(suite.service.TotalShares(), suite.ledger.ShareBalance("alice"))
	suite.Equal(suite.service.TotalAssets(), suite.ledger.Custody().Amount)
}
