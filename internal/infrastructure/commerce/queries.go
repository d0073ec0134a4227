package commerce

const channelQuery = `query Channel($id: ID!) {
  channel(id: $id) { id slug }
}`

const checkoutCreateMutation = `mutation CheckoutCreate($input: CheckoutCreateInput!) {
  checkoutCreate(input: $input) {
    checkout { id }
    errors { field message code }
  }
}`

const orderCreateFromCheckoutMutation = `mutation OrderCreateFromCheckout($id: ID!, $metadata: [MetadataInput!]) {
  orderCreateFromCheckout(id: $id, metadata: $metadata) {
    order { id }
    errors { field message code }
  }
}`

const transactionCreateMutation = `mutation TransactionCreate($id: ID!, $transaction: TransactionCreateInput!) {
  transactionCreate(id: $id, transaction: $transaction) {
    transaction { id }
    errors { field message code }
  }
}`

const orderQuery = `query Order($id: ID!) {
  order(id: $id) {
    id
    status
    metadata { key value }
  }
}`
