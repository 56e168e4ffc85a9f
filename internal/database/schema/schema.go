package schema

// SchemaSQL creates the Smart Shelf tables. Every statement is idempotent so
// it can run on each start.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS containers (
    id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
    owner_id TEXT NOT NULL,
    name VARCHAR(50) NOT NULL CHECK (length(btrim(name)) > 0),
    empty_weight_grams DOUBLE PRECISION CHECK (empty_weight_grams >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_containers_owner_updated
    ON containers (owner_id, last_updated_at DESC);

-- Items are removed by the application before their container; no ON DELETE
-- action so an incomplete cascade fails loudly instead of orphaning rows.
CREATE TABLE IF NOT EXISTS shelf_items (
    id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
    owner_id TEXT NOT NULL,
    container_id TEXT NOT NULL REFERENCES containers(id),
    food_name VARCHAR(100) NOT NULL CHECK (length(btrim(food_name)) > 0),
    calories_per_gram DOUBLE PRECISION NOT NULL CHECK (calories_per_gram >= 0),
    current_weight_grams DOUBLE PRECISION NOT NULL CHECK (current_weight_grams >= 0),
    max_weight_grams DOUBLE PRECISION NOT NULL CHECK (max_weight_grams > 0),
    device_id VARCHAR(64) NOT NULL DEFAULT 'ShelfESP32_1',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CHECK (current_weight_grams <= max_weight_grams)
);

CREATE INDEX IF NOT EXISTS idx_shelf_items_owner_updated
    ON shelf_items (owner_id, last_updated_at DESC);

CREATE INDEX IF NOT EXISTS idx_shelf_items_container
    ON shelf_items (container_id);

CREATE TABLE IF NOT EXISTS feedback_comments (
    id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
    user_id TEXT NOT NULL,
    feedback_type TEXT NOT NULL DEFAULT 'general'
        CHECK (feedback_type IN ('general', 'bug', 'feature', 'improvement')),
    title VARCHAR(200) NOT NULL CHECK (length(btrim(title)) > 0),
    message TEXT NOT NULL CHECK (length(btrim(message)) >= 10),
    email VARCHAR(254) NOT NULL CHECK (position('@' in email) > 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
