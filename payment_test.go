package ciiubl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invopop/cii.ubl/cii"
)

func TestAddPaymentMeans(t *testing.T) {
	t.Run("payment references repeat on every entry", func(t *testing.T) {
		ui := new(Invoice)
		ui.addPaymentMeans(&cii.Settlement{
			PaymentReference: []cii.Text{{Value: "REF-1"}, {Value: "REF-2"}},
			SpecifiedTradeSettlementPaymentMeans: []*cii.PaymentMeans{
				{TypeCode: "30"},
				{TypeCode: "58"},
			},
		}, buildOptions(nil))

		require.Len(t, ui.PaymentMeans, 2)
		for _, pm := range ui.PaymentMeans {
			assert.Equal(t, []string{"REF-1", "REF-2"}, pm.PaymentID)
		}
		assert.Equal(t, "30", ui.PaymentMeans[0].PaymentMeansCode.Value)
		assert.Equal(t, "58", ui.PaymentMeans[1].PaymentMeansCode.Value)
	})

	t.Run("code name comes from the first information entry", func(t *testing.T) {
		ui := new(Invoice)
		ui.addPaymentMeans(&cii.Settlement{
			SpecifiedTradeSettlementPaymentMeans: []*cii.PaymentMeans{
				{
					TypeCode: "30",
					Information: []cii.Text{
						{Value: "Credit transfer"},
						{Value: "ignored"},
					},
				},
			},
		}, buildOptions(nil))

		require.Len(t, ui.PaymentMeans, 1)
		require.NotNil(t, ui.PaymentMeans[0].PaymentMeansCode.Name)
		assert.Equal(t, "Credit transfer", *ui.PaymentMeans[0].PaymentMeansCode.Name)
	})

	t.Run("card account fills the required network id", func(t *testing.T) {
		ui := new(Invoice)
		ui.addPaymentMeans(&cii.Settlement{
			SpecifiedTradeSettlementPaymentMeans: []*cii.PaymentMeans{
				{
					TypeCode: "48",
					FinancialCard: &cii.FinancialCard{
						ID:             &cii.ID{Value: "1234"},
						CardholderName: &cii.Text{Value: "J. Smith"},
					},
				},
			},
		}, buildOptions(nil))

		require.Len(t, ui.PaymentMeans, 1)
		card := ui.PaymentMeans[0].CardAccount
		require.NotNil(t, card)
		assert.Equal(t, "1234", card.PrimaryAccountNumberID.Value)
		assert.Equal(t, CardNetworkIDPlaceholder, card.NetworkID)
		assert.Equal(t, "J. Smith", *card.HolderName)
	})

	t.Run("payee account and institution share one financial account", func(t *testing.T) {
		ui := new(Invoice)
		ui.addPaymentMeans(&cii.Settlement{
			SpecifiedTradeSettlementPaymentMeans: []*cii.PaymentMeans{
				{
					TypeCode: "30",
					PayeeAccount: &cii.CreditorAccount{
						IBANID:      &cii.ID{Value: "DE02120300000000202051"},
						AccountName: &cii.Text{Value: "Acme Main"},
					},
					PayeeInstitution: &cii.CreditorInstitution{
						BICID: &cii.ID{Value: "BYLADEM1001"},
					},
				},
			},
		}, buildOptions(nil))

		require.Len(t, ui.PaymentMeans, 1)
		fa := ui.PaymentMeans[0].PayeeFinancialAccount
		require.NotNil(t, fa)
		assert.Equal(t, "DE02120300000000202051", fa.ID.Value)
		assert.Equal(t, "Acme Main", fa.Name.Value)
		require.NotNil(t, fa.FinancialInstitutionBranch)
		assert.Equal(t, "BYLADEM1001", fa.FinancialInstitutionBranch.ID.Value)
	})

	t.Run("no groups means no entries", func(t *testing.T) {
		ui := new(Invoice)
		ui.addPaymentMeans(&cii.Settlement{
			PaymentReference: []cii.Text{{Value: "orphan"}},
		}, buildOptions(nil))
		assert.Empty(t, ui.PaymentMeans)
	})
}

func TestNewPaymentMandate(t *testing.T) {
	t.Run("mandate id from the first terms with one", func(t *testing.T) {
		m := newPaymentMandate(&cii.Settlement{
			SpecifiedTradePaymentTerms: []*cii.PaymentTerms{
				{},
				{DirectDebitMandateID: []*cii.ID{{Value: "MANDATE-7"}, {Value: "ignored"}}},
				{DirectDebitMandateID: []*cii.ID{{Value: "late"}}},
			},
		})
		require.NotNil(t, m)
		assert.Equal(t, "MANDATE-7", m.ID.Value)
		assert.Nil(t, m.PayerFinancialAccount)
	})

	t.Run("creditor reference alone is enough", func(t *testing.T) {
		m := newPaymentMandate(&cii.Settlement{
			CreditorReferenceID: &cii.ID{Value: "DE98ZZZ09999999999"},
		})
		require.NotNil(t, m)
		assert.Nil(t, m.ID)
		require.NotNil(t, m.PayerFinancialAccount)
		assert.Equal(t, "DE98ZZZ09999999999", m.PayerFinancialAccount.ID.Value)
	})

	t.Run("neither contributes", func(t *testing.T) {
		assert.Nil(t, newPaymentMandate(&cii.Settlement{
			SpecifiedTradePaymentTerms: []*cii.PaymentTerms{{}},
		}))
	})
}

func TestFirstDueDate(t *testing.T) {
	t.Run("skips unparsable terms", func(t *testing.T) {
		d := firstDueDate(&cii.Settlement{
			SpecifiedTradePaymentTerms: []*cii.PaymentTerms{
				{},
				{DueDateDateTime: ciiDateTime("not-a-date")},
				{DueDateDateTime: ciiDateTime("240310")},
			},
		}, DefaultDateLayout)
		require.NotNil(t, d)
		assert.Equal(t, "2024-03-10", d.String())
	})

	t.Run("no terms", func(t *testing.T) {
		assert.Nil(t, firstDueDate(&cii.Settlement{}, DefaultDateLayout))
	})
}
