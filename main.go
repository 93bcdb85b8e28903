package main

import (
	"github.com/tuannh982/immutable-set/set"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger := log.WithFields(log.Fields{"demo": "membership"})

	online := set.NewComparable("n0", "n1", "n2", "n3")
	voted := set.NewComparable("n1", "n2", "n4")

	logger.Info("online ", set.SortedEntries(online))
	logger.Info("voted ", set.SortedEntries(voted))
	logger.Info("online and voted ", set.SortedEntries(online.Intersect(voted)))
	logger.Info("online, not voted ", set.SortedEntries(online.Minus(voted)))
	logger.Info("seen anywhere ", set.SortedEntries(online.Union(voted)))

	quorum := online.Intersect(voted)
	weight := set.Reduce(quorum, 0, func(acc int, _ string) int { return acc + 1 })
	logger.Info("quorum weight ", weight)

	it := quorum.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		logger.Info("quorum member ", v)
	}
}
