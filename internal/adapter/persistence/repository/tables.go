package repository

import "paintmarket/internal/infrastructure/database"

// Tables lists every table the repositories use, with names resolved from
// the environment the same way the repositories resolve them.
func Tables() []database.TableSpec {
	byUser := []database.IndexSpec{{Name: userIDIndex, HashKey: "user_id"}}
	return []database.TableSpec{
		{Name: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName), HashKey: "id", Indexes: byUser},
		{Name: getenvDefault("DISCOUNTS_TABLE", defaultDiscountsTableName), HashKey: "id", Indexes: []database.IndexSpec{
			{Name: discountCodeIndex, HashKey: "code"},
			{Name: discountContractorIndex, HashKey: "contractor_id"},
		}},
		{Name: getenvDefault("CARTS_TABLE", defaultCartsTableName), HashKey: "user_id"},
		{Name: getenvDefault("ORDERS_TABLE", defaultOrdersTableName), HashKey: "id", Indexes: byUser},
		{Name: getenvDefault("COUNTERS_TABLE", defaultCountersTableName), HashKey: "name"},
		{Name: getenvDefault("CONTRACTORS_TABLE", defaultContractorsTableName), HashKey: "id", Indexes: byUser},
		{Name: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName), HashKey: "id", Indexes: byUser},
	}
}
