package shelf

// ContainerSummary totals the items in one container
type ContainerSummary struct {
	ContainerID       string  `json:"container_id"`
	Name              string  `json:"name"`
	ItemCount         int     `json:"item_count"`
	CaloriesRemaining float64 `json:"calories_remaining"`
}

// Summary totals the whole shelf. Containers appear in projection order.
type Summary struct {
	ContainerCount    int                `json:"container_count"`
	ItemCount         int                `json:"item_count"`
	CaloriesRemaining float64            `json:"calories_remaining"`
	Containers        []ContainerSummary `json:"containers"`
}

// Summary derives totals from the current projections without I/O. Items
// whose container is not in the projection count toward the shelf totals
// only.
func (c *Controller) Summary() Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := Summary{
		ContainerCount: len(c.containers.rows),
		Containers:     make([]ContainerSummary, 0, len(c.containers.rows)),
	}
	index := make(map[string]int, len(c.containers.rows))
	for i, ct := range c.containers.rows {
		index[ct.ID] = i
		out.Containers = append(out.Containers, ContainerSummary{ContainerID: ct.ID, Name: ct.Name})
	}

	for _, item := range c.items.rows {
		cal := item.CaloriesRemaining()
		out.ItemCount++
		out.CaloriesRemaining += cal
		if i, ok := index[item.ContainerID]; ok {
			out.Containers[i].ItemCount++
			out.Containers[i].CaloriesRemaining += cal
		}
	}
	return out
}
