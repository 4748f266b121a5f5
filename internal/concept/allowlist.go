package concept

// AllowList classifies concepts against a fixed table of known US-GAAP tags.
// Concepts on the deny list are excluded regardless of any other match, and
// concepts absent from both tables are excluded entirely.
type AllowList struct{}

// NewAllowList returns the allow-list strategy.
func NewAllowList() *AllowList {
	return &AllowList{}
}

// Classify looks the concept name up in the static tables. The label is
// unused; the allow-list keys on tag names only.
func (s *AllowList) Classify(name, label string) (Classification, bool) {
	if _, denied := denyConcepts[name]; denied {
		return Classification{}, false
	}
	if IsSkipConcept(name) {
		return Classification{}, false
	}
	cls, ok := allowedConcepts[name]
	return cls, ok
}

// denyConcepts are footnote, tax-reconciliation, and fair-value-disclosure
// tags that pollute statement views even though they carry USD units.
var denyConcepts = map[string]struct{}{
	"EffectiveIncomeTaxRateReconciliationAtFederalStatutoryIncomeTaxRate":          {},
	"EffectiveIncomeTaxRateContinuingOperations":                                   {},
	"IncomeTaxReconciliationIncomeTaxExpenseBenefitAtFederalStatutoryIncomeTaxRate": {},
	"IncomeTaxReconciliationStateAndLocalIncomeTaxes":                              {},
	"IncomeTaxReconciliationForeignIncomeTaxRateDifferential":                      {},
	"IncomeTaxReconciliationTaxCredits":                                            {},
	"IncomeTaxReconciliationChangeInDeferredTaxAssetsValuationAllowance":           {},
	"IncomeTaxReconciliationOtherAdjustments":                                      {},
	"AssetsFairValueDisclosure":                                                    {},
	"LiabilitiesFairValueDisclosure":                                               {},
	"FairValueNetAssetLiability":                                                   {},
	"FairValueMeasurementWithUnobservableInputsReconciliationRecurringBasisAssetValue": {},
	"DeferredTaxAssetsGross":                             {},
	"DeferredTaxAssetsNet":                               {},
	"DeferredTaxAssetsValuationAllowance":                {},
	"DeferredTaxLiabilities":                             {},
	"UnrecognizedTaxBenefits":                            {},
	"OperatingLossCarryforwards":                         {},
	"AllowanceForDoubtfulAccountsReceivable":             {},
	"FiniteLivedIntangibleAssetsAccumulatedAmortization": {},
	"LesseeOperatingLeaseLiabilityPaymentsDue":           {},
	"LongTermDebtMaturitiesRepaymentsOfPrincipalInNextTwelveMonths": {},
	"DefinedBenefitPlanFairValueOfPlanAssets":                       {},
	"ShareBasedCompensationArrangementByShareBasedPaymentAwardOptionsOutstandingNumber": {},
}

func currency(cat Category) Classification {
	return Classification{Category: cat, Semantics: Currency}
}

// allowedConcepts is the explicit concept -> classification table. Assembled
// from the tags large filers actually use; anything not listed is excluded.
var allowedConcepts = map[string]Classification{
	// Income statement
	"Revenues": currency(IncomeStatement),
	"RevenueFromContractWithCustomerExcludingAssessedTax": currency(IncomeStatement),
	"RevenueFromContractWithCustomerIncludingAssessedTax": currency(IncomeStatement),
	"SalesRevenueNet":                        currency(IncomeStatement),
	"SalesRevenueGoodsNet":                   currency(IncomeStatement),
	"SalesRevenueServicesNet":                currency(IncomeStatement),
	"RoyaltyRevenue":                         currency(IncomeStatement),
	"RevenueMineralSales":                    currency(IncomeStatement),
	"RealEstateRevenueNet":                   currency(IncomeStatement),
	"OtherOperatingIncome":                   currency(IncomeStatement),
	"CostOfRevenue":                          currency(IncomeStatement),
	"CostOfGoodsAndServicesSold":             currency(IncomeStatement),
	"CostOfGoodsSold":                        currency(IncomeStatement),
	"CostOfServices":                         currency(IncomeStatement),
	"GrossProfit":                            currency(IncomeStatement),
	"OperatingExpenses":                      currency(IncomeStatement),
	"CostsAndExpenses":                       currency(IncomeStatement),
	"ResearchAndDevelopmentExpense":          currency(IncomeStatement),
	"SellingGeneralAndAdministrativeExpense": currency(IncomeStatement),
	"SellingAndMarketingExpense":             currency(IncomeStatement),
	"GeneralAndAdministrativeExpense":        currency(IncomeStatement),
	"MarketingExpense":                       currency(IncomeStatement),
	"LaborAndRelatedExpense":                 currency(IncomeStatement),
	"ShareBasedCompensation":                 currency(IncomeStatement),
	"AmortizationOfIntangibleAssets":         currency(IncomeStatement),
	"Depreciation":                           currency(IncomeStatement),
	"DepreciationAndAmortization":            currency(IncomeStatement),
	"DepreciationNonproduction":              currency(IncomeStatement),
	"RestructuringCharges":                   currency(IncomeStatement),
	"RestructuringSettlementAndImpairmentProvisions": currency(IncomeStatement),
	"AssetImpairmentCharges":                         currency(IncomeStatement),
	"GoodwillImpairmentLoss":                         currency(IncomeStatement),
	"ImpairmentOfIntangibleAssetsExcludingGoodwill":  currency(IncomeStatement),
	"OperatingIncomeLoss":                            currency(IncomeStatement),
	"NonoperatingIncomeExpense":                      currency(IncomeStatement),
	"InterestExpense":                                currency(IncomeStatement),
	"InterestExpenseDebt":                            currency(IncomeStatement),
	"InterestIncomeExpenseNet":                       currency(IncomeStatement),
	"InterestAndDebtExpense":                         currency(IncomeStatement),
	"InvestmentIncomeInterest":                       currency(IncomeStatement),
	"InvestmentIncomeNet":                            currency(IncomeStatement),
	"OtherNonoperatingIncomeExpense":                 currency(IncomeStatement),
	"GainLossOnInvestments":                          currency(IncomeStatement),
	"GainLossOnSaleOfBusiness":                       currency(IncomeStatement),
	"ForeignCurrencyTransactionGainLossBeforeTax":    currency(IncomeStatement),
	"IncomeLossFromContinuingOperationsBeforeIncomeTaxesExtraordinaryItemsNoncontrollingInterest":                  currency(IncomeStatement),
	"IncomeLossFromContinuingOperationsBeforeIncomeTaxesMinorityInterestAndIncomeLossFromEquityMethodInvestments": currency(IncomeStatement),
	"IncomeLossFromEquityMethodInvestments":          currency(IncomeStatement),
	"IncomeTaxExpenseBenefit":                        currency(IncomeStatement),
	"CurrentIncomeTaxExpenseBenefit":                 currency(IncomeStatement),
	"DeferredIncomeTaxExpenseBenefitContinuingOperations": currency(IncomeStatement),
	"IncomeLossFromContinuingOperationsIncludingPortionAttributableToNoncontrollingInterest": currency(IncomeStatement),
	"IncomeLossFromDiscontinuedOperationsNetOfTax":   currency(IncomeStatement),
	"NetIncomeLoss":                                  currency(IncomeStatement),
	"ProfitLoss":                                     currency(IncomeStatement),
	"NetIncomeLossAttributableToNoncontrollingInterest":   currency(IncomeStatement),
	"NetIncomeLossAvailableToCommonStockholdersBasic":     currency(IncomeStatement),
	"ComprehensiveIncomeNetOfTax":                         currency(IncomeStatement),
	"OtherComprehensiveIncomeLossNetOfTax":                currency(IncomeStatement),
	"EarningsPerShareBasic":   {Category: IncomeStatement, Semantics: CurrencyPerShare},
	"EarningsPerShareDiluted": {Category: IncomeStatement, Semantics: CurrencyPerShare},
	"WeightedAverageNumberOfSharesOutstandingBasic":   {Category: IncomeStatement, Semantics: ShareCount},
	"WeightedAverageNumberOfDilutedSharesOutstanding": {Category: IncomeStatement, Semantics: ShareCount},

	// Balance sheet
	"CashAndCashEquivalentsAtCarryingValue": currency(BalanceSheet),
	"CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalents": currency(BalanceSheet),
	"RestrictedCashCurrent":                currency(BalanceSheet),
	"RestrictedCashNoncurrent":             currency(BalanceSheet),
	"ShortTermInvestments":                 currency(BalanceSheet),
	"MarketableSecuritiesCurrent":          currency(BalanceSheet),
	"AvailableForSaleSecuritiesCurrent":    currency(BalanceSheet),
	"AccountsReceivableNetCurrent":         currency(BalanceSheet),
	"ReceivablesNetCurrent":                currency(BalanceSheet),
	"NontradeReceivablesCurrent":           currency(BalanceSheet),
	"InventoryNet":                         currency(BalanceSheet),
	"InventoryFinishedGoodsNetOfReserves":  currency(BalanceSheet),
	"PrepaidExpenseAndOtherAssetsCurrent":  currency(BalanceSheet),
	"PrepaidExpenseCurrent":                currency(BalanceSheet),
	"OtherAssetsCurrent":                   currency(BalanceSheet),
	"AssetsCurrent":                        currency(BalanceSheet),
	"PropertyPlantAndEquipmentNet":         currency(BalanceSheet),
	"PropertyPlantAndEquipmentGross":       currency(BalanceSheet),
	"AccumulatedDepreciationDepletionAndAmortizationPropertyPlantAndEquipment": currency(BalanceSheet),
	"OperatingLeaseRightOfUseAsset":        currency(BalanceSheet),
	"FinanceLeaseRightOfUseAsset":          currency(BalanceSheet),
	"Goodwill":                             currency(BalanceSheet),
	"IntangibleAssetsNetExcludingGoodwill": currency(BalanceSheet),
	"FiniteLivedIntangibleAssetsNet":       currency(BalanceSheet),
	"IndefiniteLivedIntangibleAssetsExcludingGoodwill": currency(BalanceSheet),
	"MarketableSecuritiesNoncurrent":       currency(BalanceSheet),
	"AvailableForSaleSecuritiesNoncurrent": currency(BalanceSheet),
	"LongTermInvestments":                  currency(BalanceSheet),
	"EquityMethodInvestments":              currency(BalanceSheet),
	"DeferredIncomeTaxAssetsNet":           currency(BalanceSheet),
	"OtherAssetsNoncurrent":                currency(BalanceSheet),
	"AssetsNoncurrent":                     currency(BalanceSheet),
	"Assets":                               currency(BalanceSheet),
	"AccountsPayableCurrent":               currency(BalanceSheet),
	"AccountsPayableAndAccruedLiabilitiesCurrent": currency(BalanceSheet),
	"AccruedLiabilitiesCurrent":            currency(BalanceSheet),
	"EmployeeRelatedLiabilitiesCurrent":    currency(BalanceSheet),
	"AccruedIncomeTaxesCurrent":            currency(BalanceSheet),
	"DeferredRevenueCurrent":               currency(BalanceSheet),
	"ContractWithCustomerLiabilityCurrent": currency(BalanceSheet),
	"OperatingLeaseLiabilityCurrent":       currency(BalanceSheet),
	"FinanceLeaseLiabilityCurrent":         currency(BalanceSheet),
	"LongTermDebtCurrent":                  currency(BalanceSheet),
	"ShortTermBorrowings":                  currency(BalanceSheet),
	"CommercialPaper":                      currency(BalanceSheet),
	"OtherLiabilitiesCurrent":              currency(BalanceSheet),
	"LiabilitiesCurrent":                   currency(BalanceSheet),
	"LongTermDebtNoncurrent":               currency(BalanceSheet),
	"LongTermDebt":                         currency(BalanceSheet),
	"OperatingLeaseLiabilityNoncurrent":    currency(BalanceSheet),
	"FinanceLeaseLiabilityNoncurrent":      currency(BalanceSheet),
	"DeferredRevenueNoncurrent":            currency(BalanceSheet),
	"ContractWithCustomerLiabilityNoncurrent": currency(BalanceSheet),
	"DeferredIncomeTaxLiabilitiesNet":      currency(BalanceSheet),
	"AccruedIncomeTaxesNoncurrent":         currency(BalanceSheet),
	"OtherLiabilitiesNoncurrent":           currency(BalanceSheet),
	"LiabilitiesNoncurrent":                currency(BalanceSheet),
	"Liabilities":                          currency(BalanceSheet),
	"CommitmentsAndContingencies":          currency(BalanceSheet),
	"CommonStockValue":                     currency(BalanceSheet),
	"CommonStocksIncludingAdditionalPaidInCapital": currency(BalanceSheet),
	"AdditionalPaidInCapital":              currency(BalanceSheet),
	"AdditionalPaidInCapitalCommonStock":   currency(BalanceSheet),
	"RetainedEarningsAccumulatedDeficit":   currency(BalanceSheet),
	"AccumulatedOtherComprehensiveIncomeLossNetOfTax": currency(BalanceSheet),
	"TreasuryStockValue":                   currency(BalanceSheet),
	"TreasuryStockCommonValue":             currency(BalanceSheet),
	"StockholdersEquity":                   currency(BalanceSheet),
	"StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest": currency(BalanceSheet),
	"MinorityInterest":                     currency(BalanceSheet),
	"LiabilitiesAndStockholdersEquity":     currency(BalanceSheet),

	// Cash flow
	"NetCashProvidedByUsedInOperatingActivities":                     currency(CashFlow),
	"NetCashProvidedByUsedInOperatingActivitiesContinuingOperations": currency(CashFlow),
	"NetCashProvidedByUsedInInvestingActivities":                     currency(CashFlow),
	"NetCashProvidedByUsedInInvestingActivitiesContinuingOperations": currency(CashFlow),
	"NetCashProvidedByUsedInFinancingActivities":                     currency(CashFlow),
	"NetCashProvidedByUsedInFinancingActivitiesContinuingOperations": currency(CashFlow),
	"DepreciationDepletionAndAmortization":                           currency(CashFlow),
	"DepreciationAmortizationAndAccretionNet":                        currency(CashFlow),
	"DeferredIncomeTaxExpenseBenefit":                                currency(CashFlow),
	"OtherNoncashIncomeExpense":                                      currency(CashFlow),
	"IncreaseDecreaseInAccountsReceivable":                           currency(CashFlow),
	"IncreaseDecreaseInInventories":                                  currency(CashFlow),
	"IncreaseDecreaseInPrepaidDeferredExpenseAndOtherAssets":         currency(CashFlow),
	"IncreaseDecreaseInAccountsPayable":                              currency(CashFlow),
	"IncreaseDecreaseInAccruedLiabilities":                           currency(CashFlow),
	"IncreaseDecreaseInDeferredRevenue":                              currency(CashFlow),
	"IncreaseDecreaseInContractWithCustomerLiability":                currency(CashFlow),
	"PaymentsToAcquirePropertyPlantAndEquipment":                     currency(CashFlow),
	"PaymentsToAcquireProductiveAssets":                              currency(CashFlow),
	"PaymentsToAcquireIntangibleAssets":                              currency(CashFlow),
	"PaymentsToDevelopSoftware":                                      currency(CashFlow),
	"PaymentsToAcquireBusinessesNetOfCashAcquired":                   currency(CashFlow),
	"PaymentsToAcquireInvestments":                                   currency(CashFlow),
	"PaymentsToAcquireMarketableSecurities":                          currency(CashFlow),
	"PaymentsToAcquireAvailableForSaleSecuritiesDebt":                currency(CashFlow),
	"ProceedsFromSaleAndMaturityOfMarketableSecurities":              currency(CashFlow),
	"ProceedsFromMaturitiesPrepaymentsAndCallsOfAvailableForSaleSecurities": currency(CashFlow),
	"ProceedsFromSaleOfAvailableForSaleSecuritiesDebt":               currency(CashFlow),
	"ProceedsFromSaleOfPropertyPlantAndEquipment":                    currency(CashFlow),
	"ProceedsFromDivestitureOfBusinesses":                            currency(CashFlow),
	"ProceedsFromIssuanceOfLongTermDebt":                             currency(CashFlow),
	"ProceedsFromIssuanceOfCommonStock":                              currency(CashFlow),
	"ProceedsFromStockOptionsExercised":                              currency(CashFlow),
	"ProceedsFromRepaymentsOfCommercialPaper":                        currency(CashFlow),
	"ProceedsFromPaymentsForOtherFinancingActivities":                currency(CashFlow),
	"RepaymentsOfLongTermDebt":                                       currency(CashFlow),
	"RepaymentsOfDebt":                                               currency(CashFlow),
	"PaymentsOfDividends":                                            currency(CashFlow),
	"PaymentsOfDividendsCommonStock":                                 currency(CashFlow),
	"PaymentsForRepurchaseOfCommonStock":                             currency(CashFlow),
	"PaymentsRelatedToTaxWithholdingForShareBasedCompensation":       currency(CashFlow),
	"EffectOfExchangeRateOnCashCashEquivalentsRestrictedCashAndRestrictedCashEquivalents": currency(CashFlow),
	"EffectOfExchangeRateOnCashAndCashEquivalents":                   currency(CashFlow),
	"CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalentsPeriodIncreaseDecreaseIncludingExchangeRateEffect": currency(CashFlow),
	"CashAndCashEquivalentsPeriodIncreaseDecrease":                   currency(CashFlow),
	"InterestPaid":                                                   currency(CashFlow),
	"InterestPaidNet":                                                currency(CashFlow),
	"IncomeTaxesPaid":                                                currency(CashFlow),
	"IncomeTaxesPaidNet":                                             currency(CashFlow),
}
