package queries_test

import (
	"context"
	"testing"
	"time"

	"oms/internal/adapters/out/postgres/customerrepo"
	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type GetCustomersBySegmentQueryHandlerTestSuite struct {
	postgresSuite
	handler      queries.GetCustomersBySegmentQueryHandler
	customerRepo *customerrepo.GormCustomerRepository
}

func (suite *GetCustomersBySegmentQueryHandlerTestSuite) SetupSuite() {
	suite.postgresSuite.SetupSuite()

	suite.handler = queries.NewGetCustomersBySegmentQueryHandler(suite.db)
	suite.customerRepo = customerrepo.NewGormCustomerRepository(suite.db, &mockAggregateTracker{})
}

func (suite *GetCustomersBySegmentQueryHandlerTestSuite) TestHandle_FiltersSortsAndMaps() {
	ctx := context.Background()
	lastOrder := time.Date(2025, 4, 2, 15, 0, 0, 0, time.UTC)

	hopper := suite.addCustomer("Grace", "Hopper", "grace@example.com", customer.Gold)
	suite.Require().NoError(hopper.ImportHistory(decimal.RequireFromString("7300.25"), 9, &lastOrder))
	suite.Require().NoError(suite.customerRepo.Update(ctx, hopper))
	lovelace := suite.addCustomer("Ada", "Lovelace", "ada@example.com", customer.Gold)
	suite.addCustomer("Alan", "Turing", "alan@example.com", customer.Silver)

	query, err := queries.NewGetCustomersBySegmentQuery(customer.Gold)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(hopper.ID(), result[0].ID)
	suite.Equal("Grace", result[0].FirstName)
	suite.Equal("Hopper", result[0].LastName)
	suite.Equal("grace@example.com", result[0].Email)
	suite.Equal(customer.Gold, result[0].Segment)
	suite.True(decimal.RequireFromString("7300.25").Equal(result[0].TotalSpent))
	suite.Equal(9, result[0].OrderCount)
	suite.Require().NotNil(result[0].LastOrderDate)
	suite.Equal(lastOrder, *result[0].LastOrderDate)

	suite.Equal(lovelace.ID(), result[1].ID)
	suite.True(result[1].TotalSpent.IsZero())
	suite.Nil(result[1].LastOrderDate)
}

func (suite *GetCustomersBySegmentQueryHandlerTestSuite) TestHandle_EmptySegment_ReturnsEmptySlice() {
	suite.addCustomer("Alan", "Turing", "alan@example.com", customer.Silver)
	query, err := queries.NewGetCustomersBySegmentQuery(customer.Platinum)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustomersBySegmentQueryHandlerTestSuite) TestHandle_NotConstructedQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetCustomersBySegmentQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetCustomersBySegmentQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *GetCustomersBySegmentQueryHandlerTestSuite) addCustomer(
	firstName, lastName, email string,
	segment customer.Segment,
) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), firstName, lastName, email, "", segment,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customerRepo.Add(context.Background(), c))
	return c
}

func TestGetCustomersBySegmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomersBySegmentQueryHandlerTestSuite))
}
